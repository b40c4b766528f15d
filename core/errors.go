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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidFlightRecord indicates a FlightRecord failed validation.
	ErrInvalidFlightRecord = errors.New("invalid flight record")

	// ErrEmptyFlightNumber indicates the FlightNumber field is empty.
	ErrEmptyFlightNumber = errors.New("flight number cannot be empty")

	// ErrMalformedFlightNumber indicates a flight number with characters
	// outside the alphanumeric code alphabet.
	ErrMalformedFlightNumber = errors.New("flight number must be alphanumeric")
)
