// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"math/rand/v2"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"
)

// AccuracyScorer assigns the accuracy shown for a person. The value is
// presented as a confidence score but is not derived from any matching.
type AccuracyScorer func(record model.UpstreamRecord) int

// RandomAccuracy draws uniformly from [MinAccuracy, MaxAccuracy].
func RandomAccuracy(model.UpstreamRecord) int {
	return constants.MinAccuracy + rand.IntN(constants.MaxAccuracy-constants.MinAccuracy+1)
}

// FixedAccuracy always returns score. Handy for deterministic output.
func FixedAccuracy(score int) AccuracyScorer {
	return func(model.UpstreamRecord) int {
		return score
	}
}
