/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libcrawl

import (
	"fmt"
)

//FetchError is returned when a page could not be retrieved. Status is 0 if
//the request failed before a response arrived.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Fetching %q failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("Fetching %q failed: HTTP status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

//MissingFieldError is returned when a record container lacks a required field.
type MissingFieldError struct {
	Field string
	Index int //position of the container on its page
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Record %d: required field %q not found", e.Index, e.Field)
}
