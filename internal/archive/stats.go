package archive

import "sort"

// TypeCount is the number of instances of one type name.
type TypeCount struct {
	TypeName string
	Count    int
}

// Stats summarizes an archive by instance type.
type Stats struct {
	Entities        int
	Relationships   int
	Classifications int
	EntityTypes     []TypeCount
	RelationTypes   []TypeCount
	ClassTypes      []TypeCount
}

// Stats counts entities, relationships and classifications by type.
func (a *Archive) Stats() Stats {
	entityTypes := make(map[string]int)
	relationTypes := make(map[string]int)
	classTypes := make(map[string]int)

	s := Stats{Entities: len(a.Entities), Relationships: len(a.Relationships)}
	for _, e := range a.Entities {
		entityTypes[e.TypeName]++
		for _, c := range e.Classifications {
			classTypes[c.Name]++
			s.Classifications++
		}
	}
	for _, r := range a.Relationships {
		relationTypes[r.TypeName]++
	}

	s.EntityTypes = sortedCounts(entityTypes)
	s.RelationTypes = sortedCounts(relationTypes)
	s.ClassTypes = sortedCounts(classTypes)
	return s
}

// sortedCounts orders by descending count, then type name.
func sortedCounts(m map[string]int) []TypeCount {
	counts := make([]TypeCount, 0, len(m))
	for name, n := range m {
		counts = append(counts, TypeCount{TypeName: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].TypeName < counts[j].TypeName
	})
	return counts
}
