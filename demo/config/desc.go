package config

// Scene modes.
const (
	SceneTextured = "textured"
	SceneLit      = "lit"

	DescSceneTextured = "Textured cube"
	DescSceneLit      = "Lit cubes with a point light"
)

var sceneDescs = map[string]string{
	SceneTextured: DescSceneTextured,
	SceneLit:      DescSceneLit,
}

// SceneDesc returns the human readable name of a scene mode.
func SceneDesc(mode string) string {
	return sceneDescs[mode]
}
