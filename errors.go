/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package radix

import (
	"errors"

	"github.com/capitalone/radix/digits"
)

var (
	// ErrInvalidBase is returned when a base smaller than 2 is supplied.
	ErrInvalidBase = errors.New("base must be at least 2")

	// ErrDigitOutOfRange is returned when a supplied digit is not less than its base.
	ErrDigitOutOfRange = digits.ErrDigitOutOfRange

	// ErrMalformedLiteral is returned by the literal parsers for characters
	// that are not digits of the literal's base.
	ErrMalformedLiteral = errors.New("malformed numeral literal")

	// ErrZeroDenominator is returned by FromFraction for a zero denominator.
	ErrZeroDenominator = errors.New("zero denominator")
)
