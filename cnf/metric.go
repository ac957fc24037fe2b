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

package cnf

import (
	"fmt"

	"github.com/czcorpus/layoutgen/v2/core/metric"
)

// BuildMetric resolves c.Metric into a concrete metric.Func, using
// c.Positions / c.Fingers as the geometry the named metric needs.
func (c *Config) BuildMetric() (metric.Func, error) {
	switch c.Metric.Name {
	case "taxicab":
		if len(c.Positions) != len(c.Keys) {
			return nil, fmt.Errorf("metric %q requires one position per key", c.Metric.Name)
		}
		return metric.Taxicab(c.Positions), nil
	case "euclidean":
		if len(c.Positions) != len(c.Keys) {
			return nil, fmt.Errorf("metric %q requires one position per key", c.Metric.Name)
		}
		return metric.Euclidean(c.Positions), nil
	case "sameFingerPenalty":
		if len(c.Fingers) != len(c.Keys) {
			return nil, fmt.Errorf("metric %q requires one finger per key", c.Metric.Name)
		}
		return metric.SameFingerPenalty(c.Fingers, c.Metric.Params["penalty"]), nil
	default:
		return nil, fmt.Errorf("unknown metric %q", c.Metric.Name)
	}
}
