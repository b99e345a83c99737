package zipindex

import (
	"sort"
	"strings"
)

// Search returns the identifiers of documents whose token set contains
// the lowercased term, in lexicographic order. An empty term matches
// nothing. Search never mutates the index and is safe for concurrent
// use against the same Index.
func Search(idx *Index, term string) []string {
	term = strings.ToLower(term)
	if term == "" {
		return nil
	}
	if idx.filter != nil && !idx.filter.Test(term) {
		return nil
	}
	var matches []string
	for _, name := range idx.names {
		if idx.docs[name].Tokens.Contains(term) {
			matches = append(matches, name)
		}
	}
	return matches
}

// SearchQuery evaluates a search query that may combine terms with the
// connectives "and", "or" and "but":
//
//	a and b    documents containing every term
//	a or b     documents containing any term
//	a but b    documents containing a and not b
//
// A query without a connective behaves exactly like Search on the whole
// string. Results are in lexicographic order.
func SearchQuery(idx *Index, query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return nil
	}

	for i, f := range fields {
		switch f {
		case "or":
			return sortedNames(unionSet(idx, without(fields, "or")))
		case "and":
			return sortedNames(intersectSet(idx, without(fields, "and")))
		case "but":
			left := intersectSet(idx, fields[:i])
			right := unionSet(idx, fields[i+1:])
			for name := range right {
				delete(left, name)
			}
			return sortedNames(left)
		}
	}

	return Search(idx, query)
}

// memberSet returns the set of documents containing term.
func memberSet(idx *Index, term string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, name := range Search(idx, term) {
		set[name] = struct{}{}
	}
	return set
}

func unionSet(idx *Index, terms []string) map[string]struct{} {
	result := make(map[string]struct{})
	for _, t := range terms {
		for name := range memberSet(idx, t) {
			result[name] = struct{}{}
		}
	}
	return result
}

func intersectSet(idx *Index, terms []string) map[string]struct{} {
	result := make(map[string]struct{})
	for i, t := range terms {
		set := memberSet(idx, t)
		if i == 0 {
			result = set
			continue
		}
		for name := range result {
			if _, ok := set[name]; !ok {
				delete(result, name)
			}
		}
		if len(result) == 0 {
			return result
		}
	}
	return result
}

func without(fields []string, connective string) []string {
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != connective {
			terms = append(terms, f)
		}
	}
	return terms
}

func sortedNames(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
