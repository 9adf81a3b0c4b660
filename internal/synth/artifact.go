package synth

// Artifact is one generated file: a slash-separated path relative to the
// project root and its text content.
type Artifact struct {
	Path    string
	Content string
}

// ArtifactSet is an ordered collection of artifacts. Later additions with
// an existing path replace the earlier content in place.
type ArtifactSet struct {
	items []Artifact
}

// Add appends an artifact, or replaces the content of an existing path.
func (s *ArtifactSet) Add(a Artifact) {
	for i := range s.items {
		if s.items[i].Path == a.Path {
			s.items[i].Content = a.Content
			return
		}
	}
	s.items = append(s.items, a)
}

// AddAll appends every artifact in order.
func (s *ArtifactSet) AddAll(as []Artifact) {
	for _, a := range as {
		s.Add(a)
	}
}

// Items returns the artifacts in insertion order.
func (s *ArtifactSet) Items() []Artifact {
	out := make([]Artifact, len(s.items))
	copy(out, s.items)
	return out
}

// Paths returns the artifact paths in insertion order.
func (s *ArtifactSet) Paths() []string {
	out := make([]string, len(s.items))
	for i, a := range s.items {
		out[i] = a.Path
	}
	return out
}

// Get returns the artifact at path.
func (s *ArtifactSet) Get(path string) (Artifact, bool) {
	for _, a := range s.items {
		if a.Path == path {
			return a, true
		}
	}
	return Artifact{}, false
}

// Has reports whether an artifact exists at path.
func (s *ArtifactSet) Has(path string) bool {
	_, ok := s.Get(path)
	return ok
}

// Len returns the number of artifacts.
func (s *ArtifactSet) Len() int {
	return len(s.items)
}
