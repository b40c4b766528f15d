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


// Package storage provides the record store abstraction for flightdesk.
//
// The package defines the FlightRepository interface that decouples the
// pipeline from the storage implementation, the mus-format serialization
// for flight records, and the reference dataset.
//
// # Constructor Return Type Pattern
//
// Public constructors in implementation packages return the interface type
// to enforce abstraction:
//
//	repo, err := badger.NewFlightRepository(backend) // returns storage.FlightRepository
//
// This keeps alternative backends (in-memory, SQL) swappable without
// touching pipeline code, and lets tests substitute fakes freely.
package storage
