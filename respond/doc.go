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


// Package respond synthesizes natural-language answers from matched flight
// records.
//
// The primary path hands the flights, serialized as JSON, to the language
// service for free-form prose. The fallback path renders a fixed template
// per flight and is the surface that carries the correctness guarantees:
// deterministic, byte-identical output for identical input, and a fixed
// message for the empty case. Fully populated records have their templated
// line memoized in an LRU keyed by flight number; the record set is static,
// so the cache is never invalidated.
package respond
