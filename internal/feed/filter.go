// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package feed

import (
	"strings"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

// Filter returns the recipes whose title contains query, ignoring case, and
// which have at least one of tags. An empty query or empty tags matches
// everything. The input is not modified.
func Filter(recipes []*peakplatesdb.Recipe, query string, tags []string) []*peakplatesdb.Recipe {
	query = strings.ToLower(strings.TrimSpace(query))

	res := make([]*peakplatesdb.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if query != "" && !strings.Contains(strings.ToLower(r.Title), query) {
			continue
		}
		if len(tags) > 0 && !r.HasTag(tags...) {
			continue
		}
		res = append(res, r)
	}
	return res
}
