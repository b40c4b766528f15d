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


package pipeline

import "errors"

var (
	// ErrFlightRepositoryRequired is returned when a flight repository is not provided.
	ErrFlightRepositoryRequired = errors.New("flight repository required")

	// ErrExtractorRequired is returned when an extractor is not provided.
	ErrExtractorRequired = errors.New("extractor required")

	// ErrSynthesizerRequired is returned when a synthesizer is not provided.
	ErrSynthesizerRequired = errors.New("synthesizer required")

	// ErrOrchestratorRequired is returned when an orchestrator is not provided.
	ErrOrchestratorRequired = errors.New("orchestrator required")
)
