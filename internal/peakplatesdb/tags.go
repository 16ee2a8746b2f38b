// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package peakplatesdb

import "slices"

// AvailableTags are the tags a recipe can be labeled with.
var AvailableTags = []string{
	"Weight Loss",
	"Muscle Gain",
	"Diabetic Friendly",
	"Vegetarian",
	"Dairy Free",
	"Anti-Inflammatory",
	"Nut Free",
	"Soy Free",
	"High Antioxidants",
	"Immunity Boosting",
	"Whole Grains",
	"Greens",
	"High Protein",
	"High Fiber",
	"Low Calories",
	"Vegan",
	"Gluten Free",
	"Heart Healthy",
	"Low Sugar",
	"Low Sodium",
	"Gut Friendly",
	"No Added Sugar",
}

func IsAvailableTag(tag string) bool {
	return slices.Contains(AvailableTags, tag)
}
