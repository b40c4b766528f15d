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


// Package ai abstracts the external natural-language service used by
// flightdesk.
//
// The package defines a single capability interface, LanguageService, with
// two operations: Probe (is the service reachable right now?) and Complete
// (text generation). The service is modeled as strictly best-effort: the
// extraction and synthesis components that consume it each carry a total,
// deterministic fallback, and no failure mode of the service is allowed to
// leak into the pipeline's own error taxonomy.
//
// # Implementation Packages
//
//   - ai/ollama: production client for an Ollama server
//   - ai/mock: test doubles for unit testing without a running service
//
// # Constructor Return Type Pattern
//
// Public production constructors (ollama.NewLanguageService) return the
// INTERFACE type to enforce abstraction and prevent accidental coupling to
// the Ollama-specific implementation.
//
//	svc, err := ollama.NewLanguageService(cfg) // returns ai.LanguageService
//
// Test utility constructors (mock.NewLanguageService) return the CONCRETE
// type to enable behavior injection and call-count assertions:
//
//	svc := mock.NewLanguageService() // returns *mock.LanguageService
//	svc.SetAvailable(false)
//	count := svc.CompleteCallCount()
package ai
