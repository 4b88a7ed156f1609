/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package cmdline

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

type Boolean bool

func (b *Boolean) Set(s string) error {
	lower := strings.ToLower(s)
	switch lower {
	case "true":
		*b = true
	case "false":
		*b = false
	default:
		return fmt.Errorf("Invalid input for Boolean flag: %q", s)
	}
	return nil
}

func (b *Boolean) String() string {
	if b == nil || !*b {
		return "false"
	}
	return "true"
}

type SingleURL struct {
	URL *url.URL
}

func (v *SingleURL) Set(s string) error {
	if url, err := url.Parse(s); err != nil {
		return err
	} else {
		v.URL = url
	}
	return nil
}

func (v *SingleURL) String() string {
	if v == nil || v.URL == nil {
		return ""
	}
	return v.URL.String()
}

//OutputFile is the path of a file that will be created or truncated.
//Its parent directory must exist, the file itself may not be a directory.
type OutputFile struct {
	Path string
}

func (v *OutputFile) Set(s string) error {
	if s == "" {
		return fmt.Errorf("Empty output file name")
	}
	if fi, err := os.Stat(s); err == nil && fi.IsDir() {
		return fmt.Errorf("File %q is a directory!", s)
	}
	dir := filepath.Dir(s)
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("File %q is not a directory!", dir)
	}
	v.Path = s
	return nil
}

func (v *OutputFile) String() string {
	if v == nil {
		return ""
	}
	return v.Path
}
