package docs

// Lookup extracts and queries the documentation of one crate under root.
// Any hard failure aborts the lookup; partial results are never returned.
func Lookup(root, name string, q Query) (*Documentation, error) {
	dir, err := CrateDir(root, name)
	if err != nil {
		return nil, err
	}

	items, err := Walk(dir)
	if err != nil {
		return nil, err
	}

	return &Documentation{
		Name:  name,
		Items: q.Apply(items),
	}, nil
}
