/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package main

import (
	"fmt"
	"github.com/jwdev42/quotecrawl/global"
	"github.com/jwdev42/quotecrawl/libcrawl"
	"github.com/jwdev42/quotecrawl/libcsv"
	"github.com/jwdev42/quotecrawl/libreport"
	"os"
)

var log = global.GetLogger()

func eexit(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(2)
}

func main() {
	cc, err := parseCmdline(os.Args[1:])
	if err != nil {
		eexit(fmt.Errorf("command line parser error: %v", err))
	}
	if err := crawl(cc); err != nil {
		eexit(fmt.Errorf("crawler failed: %v", err))
	}
}

func crawl(cc *libcrawl.CrawlContext) error {
	log.Notice(fmt.Sprintf("Crawling %q, writing records to %q", cc.Seed(), cc.Output()))
	stream := cc.Stream()
	_, err := libcsv.Write(stream, cc.Output())
	if cc.Summary() {
		fmt.Println(libreport.Summary(stream.Pages()))
	}
	return err
}
