package model

import (
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pkg/errors"
)

type stringSet map[string]struct{}

func (ss stringSet) add(s string) {
	ss[s] = struct{}{}
}

func (ss stringSet) has(s string) bool {
	_, ok := ss[s]
	return ok
}

func sourceOrderBlocks(blocks []*hclsyntax.Block) []*hclsyntax.Block {
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Range().Start.Byte < blocks[j].Range().Start.Byte
	})
	return blocks
}

func sourceOrderAttributes(attrMap map[string]*hclsyntax.Attribute) []*hclsyntax.Attribute {
	var attrs []*hclsyntax.Attribute
	for _, attr := range attrMap {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].Range().Start.Byte < attrs[j].Range().Start.Byte
	})
	return attrs
}

// DecomposeRegistration splits a "parent:keyword:kind" registration token into its components.
func DecomposeRegistration(tok string) (Kind, string, Kind, error) {
	components := strings.Split(tok, ":")
	if len(components) != 3 {
		return "", "", "", errors.Errorf("malformed registration %q: expected parent:keyword:kind", tok)
	}
	for _, c := range components {
		if c == "" {
			return "", "", "", errors.Errorf("malformed registration %q: empty component", tok)
		}
	}
	return Kind(components[0]), components[1], Kind(components[2]), nil
}
