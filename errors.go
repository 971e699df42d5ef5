package dsnutils

import "errors"

// ErrJson tells that value has invalid JSON format.
var ErrJson = errors.New("invalid JSON format")

// ErrPreservedData tells that there is some kind of error with preserved data.
var ErrPreservedData = errors.New("preserved data error")

// ErrExpectation tells that preserved or obtained data does not match expectation.
var ErrExpectation = errors.New("expectation error")
