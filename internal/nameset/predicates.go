package nameset

// ExactEquals reports raw string identity, with no normalization at all. This
// is the strongest evidence two records describe the same student.
func ExactEquals(a, b string) bool {
	return a == b
}

// TokensEqual reports whether two names normalize to identical token sets,
// making it insensitive to case, accents, separators, and word order.
func TokensEqual(a, b string) bool {
	return Normalize(a).Equal(Normalize(b))
}

// TokensContain reports whether either name's token set is contained in the
// other's. This absorbs an extra middle name or a dropped particle on one
// side. False when either set is empty.
func TokensContain(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	return na.SubsetOf(nb) || nb.SubsetOf(na)
}

// TokensIntersect reports whether the names share at least one token. A single
// common first name is enough, so this is a last resort; useful when a student
// is registered under a different family name in one of the sources. False
// when either set is empty.
func TokensIntersect(a, b string) bool {
	return Normalize(a).Intersects(Normalize(b))
}
