package cache

// SceneKeyOpts lists the options that change the assembled scene.
type SceneKeyOpts struct {
	Geometry any `json:"geometry"`
}

// ArtifactKeyOpts lists the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Scale  float64 `json:"scale,omitempty"`
	Title  string  `json:"title,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// SceneKey identifies the scene computed from a family document.
	SceneKey(familyHash string, opts SceneKeyOpts) string
	// ArtifactKey identifies one output format rendered from a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "scene:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SceneKey implements [Keyer].
func (DefaultKeyer) SceneKey(familyHash string, opts SceneKeyOpts) string {
	return hashKey(KeyTypeScene, familyHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, sceneHash, opts)
}

var _ Keyer = DefaultKeyer{}
