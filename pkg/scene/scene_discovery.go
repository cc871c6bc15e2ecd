package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when no built-in scene has the requested name
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used on the command line
	Description string
	build       func() (*Scene, error)
}

var builtinScenes = []SceneInfo{
	{ID: "default", Description: "Diffuse, metal and glass spheres on a ground sphere", build: NewDefaultScene},
	{ID: "simple", Description: "Single diffuse sphere on a ground sphere, 1 sample per pixel", build: NewSimpleScene},
	{ID: "mirrors", Description: "Two facing mirrors that exercise the bounce limit", build: NewMirrorScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewSceneByName builds the built-in scene with the given ID
func NewSceneByName(name string) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.ID == name {
			return info.build()
		}
	}

	var ids []string
	for _, info := range ListScenes() {
		ids = append(ids, info.ID)
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(ids, ", "))
}
