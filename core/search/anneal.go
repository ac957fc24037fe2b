// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import "math/rand"

// Anneal is a temperature-decay search, deliberately not a standard
// simulated anneal: acceptance is a hard threshold against the current
// temperature, not an exponential probability.
//
// It initializes temperature to the current score, then repeatedly
// swaps two distinct free positions drawn uniformly at random and
// rescores. A swap is accepted if it lands below current+temperature;
// accepting updates temperature by the change in score, so temperature
// grows on improving moves and shrinks on accepted uphill moves. Every
// iteration temperature is multiplied by resistance/(resistance+1).
// The search halts once temperature reaches zero, which it always
// does in finitely many steps - callers that care about wall-clock
// time should bound the number of iterations externally, since a
// large initial temperature or resistance can make that number large.
func Anneal(a Analyzer, layout []int, pins int, resistance float64, rng *rand.Rand) {
	n := len(layout)
	if n-pins < 2 {
		return
	}
	current := a.Score(layout)
	temperature := current
	decay := resistance / (resistance + 1)
	for temperature > 0 {
		i := pins + rng.Intn(n-pins)
		j := i
		for j == i {
			j = pins + rng.Intn(n-pins)
		}
		layout[i], layout[j] = layout[j], layout[i]
		next := a.Score(layout)
		if next < current+temperature {
			temperature += current - next
			current = next
		} else {
			layout[i], layout[j] = layout[j], layout[i]
		}
		temperature *= decay
	}
}
