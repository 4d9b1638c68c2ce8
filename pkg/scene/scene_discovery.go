package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/device"
)

// SceneInfo describes a builtin scene
type SceneInfo struct {
	ID          string // Unique identifier
	DisplayName string // Human readable name
	Description string // Optional description
}

type builtinScene struct {
	info   SceneInfo
	create func(*device.Device) (*Scene, error)
}

var builtins = map[string]builtinScene{
	"hex-sphere": {
		info: SceneInfo{
			Description: "Six yellow spheres on a circle with thin black outlines",
		},
		create: NewHexSphere,
	},
	"four-spheres": {
		info: SceneInfo{
			Description: "Four spheres with per-primitive colors, lit from the side",
		},
		create: NewFourSpheres,
	},
	"outline-material": {
		info: SceneInfo{
			Description: "Hex spheres with wide solid outlines colored per primitive",
		},
		create: NewOutlineMaterial,
	},
}

// Builtin lists the builtin scenes sorted by display name
func Builtin() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for id, b := range builtins {
		info := b.info
		info.ID = id
		info.DisplayName = titleCase(id)
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// Create builds the builtin scene with the given id on dev
func Create(id string, dev *device.Device) (*Scene, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("%w: unknown scene %q", core.ErrInvalidArgument, id)
	}
	return b.create(dev)
}

// titleCase converts an identifier to title case
// e.g., "hex-sphere" -> "Hex Sphere"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
