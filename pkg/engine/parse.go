package engine

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
)

// Finding is one raw issue reported by the engine. Line numbers are relative
// to the text the engine was given.
type Finding struct {
	Line      int    `json:"line"`
	Character int    `json:"character"`
	Reason    string `json:"reason"`
	Code      string `json:"code"`
	Evidence  string `json:"evidence,omitempty"`
}

var errEmptyOutput = errors.New("empty output")

// ParseOutput decodes engine output. A JSON array of error objects (as written
// by the JSON reporter script) and the built-in jslint XML report are accepted;
// the format is detected from the first non-blank byte.
func ParseOutput(output []byte) ([]Finding, error) {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) == 0 {
		return nil, errEmptyOutput
	}

	switch trimmed[0] {
	case '[':
		return parseJSON(trimmed)
	case '<':
		return parseJSLintXML(trimmed)
	default:
		return nil, fmt.Errorf("unrecognized output starting with %q", trimmed[0])
	}
}

func parseJSON(data []byte) ([]Finding, error) {
	var raw []*Finding
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode JSON findings: %w", err)
	}

	findings := make([]Finding, 0, len(raw))
	for _, finding := range raw {
		// The engine appends null entries after fatal errors.
		if finding == nil {
			continue
		}
		findings = append(findings, *finding)
	}
	return findings, nil
}

type jslintReport struct {
	XMLName xml.Name     `xml:"jslint"`
	Files   []jslintFile `xml:"file"`
}

type jslintFile struct {
	Name   string        `xml:"name,attr"`
	Issues []jslintIssue `xml:"issue"`
}

type jslintIssue struct {
	Line     int    `xml:"line,attr"`
	Char     int    `xml:"char,attr"`
	Reason   string `xml:"reason,attr"`
	Evidence string `xml:"evidence,attr"`
	Severity string `xml:"severity,attr"`
}

func parseJSLintXML(data []byte) ([]Finding, error) {
	var report jslintReport
	if err := xml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode jslint XML: %w", err)
	}

	var findings []Finding
	for _, file := range report.Files {
		for _, issue := range file.Issues {
			findings = append(findings, Finding{
				Line:      issue.Line,
				Character: issue.Char,
				Reason:    issue.Reason,
				Code:      issue.Severity,
				Evidence:  issue.Evidence,
			})
		}
	}
	if findings == nil {
		findings = []Finding{}
	}
	return findings, nil
}
