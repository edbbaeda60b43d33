package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// maxSuggestionDistance bounds the edit distance of "did you mean" suggestions.
const maxSuggestionDistance = 2

func diagf(severity hcl.DiagnosticSeverity, subject hcl.Range, f string, args ...interface{}) *hcl.Diagnostic {
	message := fmt.Sprintf(f, args...)
	return &hcl.Diagnostic{
		Severity: severity,
		Summary:  message,
		Detail:   message,
		Subject:  &subject,
	}
}

func errorf(subject hcl.Range, f string, args ...interface{}) *hcl.Diagnostic {
	return diagf(hcl.DiagError, subject, f, args...)
}

func warningf(subject hcl.Range, f string, args ...interface{}) *hcl.Diagnostic {
	return diagf(hcl.DiagWarning, subject, f, args...)
}

func labelsErrorf(block *hclsyntax.Block, f string, args ...interface{}) *hcl.Diagnostic {
	if len(block.LabelRanges) == 0 {
		return errorf(block.TypeRange, f, args...)
	}
	start, end := block.LabelRanges[0], block.LabelRanges[len(block.LabelRanges)-1]
	return errorf(hcl.RangeBetween(start, end), f, args...)
}

func unsupportedAttribute(attr *hclsyntax.Attribute, kind Kind) *hcl.Diagnostic {
	return errorf(attr.NameRange, "unsupported attribute %q in %s block", attr.Name, kind)
}

func unknownKeyword(block *hclsyntax.Block, parent Kind, keywords []string) *hcl.Diagnostic {
	diag := errorf(block.TypeRange, "unsupported block type %q in %s scope", block.Type, parent)
	if suggestion := nearestKeyword(block.Type, keywords); suggestion != "" {
		diag.Detail = fmt.Sprintf("%s; did you mean %q?", diag.Summary, suggestion)
	}
	return diag
}

// nearestKeyword returns the keyword closest to word, or "" if none is within maxSuggestionDistance edits.
func nearestKeyword(word string, keywords []string) string {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, keyword := range keywords {
		d := levenshtein.DistanceForStrings([]rune(word), []rune(keyword), levenshtein.DefaultOptions)
		if d < bestDistance {
			best, bestDistance = keyword, d
		}
	}
	return best
}
