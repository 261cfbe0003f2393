// Package pivot implements the exact PivotSelector of spec §4.5: it
// groups a community's vertices into topological-equivalence classes
// by their normalized VertexInfo fingerprint, then reports one
// representative per class (the non-border member with minimum
// current betweenness) paired with that class's cardinality.
package pivot
