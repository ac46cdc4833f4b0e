package stimulus

import (
	"fmt"

	"github.com/uyouii/dff-helpers/common"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var regionByPlane = map[string]string{
	"VISam_6": "AM #1",
	"VISam_7": "AM #2",
	"VISp_0":  "V1 Anterior #1",
	"VISp_1":  "V1 Anterior #2",
	"VISp_2":  "V1 Posterior #1",
	"VISp_3":  "V1 Posterior #2",
	"VISp_4":  "V1 Center #1",
	"VISp_5":  "V1 Center #2",
}

var stimNames = map[string]string{
	"drifting_gratings_field_block_presentations_vsync": "Drifting Gratings",
	"homogeneous_background_presentations_vsync":        "Homogeneous Background",
	"rdkCircle_presentations_vsync":                     "Random Dot Kinematogram", // center
	"rdkSqr_presentations_vsync":                        "random dot kinematogram outside",
	"receptive_field_block_presentations_vsync":         "Gabor Stimuli",
	"sparse_noise_8x14_presentations_vsync":             "Sparse Noise",
}

// RegionByPlane returns the display name of an imaging plane.
func RegionByPlane(plane string) (string, error) {
	return lookup(regionByPlane, "plane", plane)
}

// StimName returns the display name of a stimulus interval table key.
func StimName(stimKey string) (string, error) {
	return lookup(stimNames, "stimulus", stimKey)
}

func KnownPlanes() []string {
	return sortedKeys(regionByPlane)
}

func KnownStimKeys() []string {
	return sortedKeys(stimNames)
}

func lookup(table map[string]string, kind, key string) (string, error) {
	name, ok := table[key]
	if !ok {
		return "", fmt.Errorf("%w: %v %q", common.ErrorUnknownLabel, kind, key)
	}
	return name, nil
}

func sortedKeys(table map[string]string) []string {
	keys := maps.Keys(table)
	slices.Sort(keys)
	return keys
}
