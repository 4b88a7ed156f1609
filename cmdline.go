/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package main

import (
	"github.com/jwdev42/quotecrawl/libcrawl"
)

func parseCmdline(args []string) (*libcrawl.CrawlContext, error) {
	cc := libcrawl.NewCrawlContext()
	if err := cc.SetOptions(args); err != nil {
		return nil, err
	}
	return cc, nil
}
