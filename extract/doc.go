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


// Package extract turns free-text flight questions into structured search
// criteria.
//
// Extraction is a two-path design. The primary path asks the external
// language service for a strict JSON interpretation of the question; it is
// best-effort and may fail in any way (service down, timeout, prose-wrapped
// or malformed JSON). The fallback path is rule-based: closed city and
// airline vocabularies plus a flight-number pattern. Every primary-path
// failure degrades silently to the fallback, so Extract never returns an
// error and is independently testable without any external dependency.
//
// Note the asymmetry between the two matching laws in this system: the
// fallback here uses substring containment against the query text, while
// the search package matches criteria against records by exact
// case-insensitive equality. The fuzziness lives only on this side.
package extract
