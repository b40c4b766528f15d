// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package pipeline sequences extraction, matching, and synthesis into the
// single caller-facing operation Run(query) -> PipelineResult.
//
// The orchestrator owns the error contract: user-correctable outcomes
// (unintelligible query, no matching flights) are surfaced as distinct
// failure messages, external-service trouble never surfaces at all (the
// extractor and synthesizer degrade to their deterministic paths), and any
// unexpected fault is recovered at the Run boundary and converted into a
// failed result carrying the fault description. The pipeline is stateless
// across calls; the Batch runner exploits that by running each query as an
// independent invocation on a worker pool.
package pipeline
