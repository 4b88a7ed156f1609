/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libcrawl

import (
	"flag"
	"fmt"
	"github.com/go-resty/resty/v2"
	"github.com/jwdev42/cookiefile"
	"github.com/jwdev42/logger"
	"github.com/jwdev42/quotecrawl/cmdline"
	"github.com/jwdev42/quotecrawl/global"
	"github.com/jwdev42/quotecrawl/libhttp/redirect"
	"net/http"
)

const DEFAULT_SEED = "https://quotes.toscrape.com/"
const DEFAULT_OUTPUT = "quotes.csv"

var log = global.GetLogger()

type CrawlContext struct {
	output    string
	seed      string
	summary   bool
	redirect  resty.RedirectPolicy
	Cookies   []*http.Cookie
	Selectors Selectors
}

func NewCrawlContext() *CrawlContext {
	return &CrawlContext{
		output:    DEFAULT_OUTPUT,
		seed:      DEFAULT_SEED,
		redirect:  redirect.Policy(true),
		Selectors: DefaultSelectors,
	}
}

//Parse global options and attach them to the CrawlContext
func (cc *CrawlContext) SetOptions(args []string) error {
	flagSet := flag.NewFlagSet("GlobalOptions", flag.ContinueOnError)
	output := &cmdline.OutputFile{}
	flagSet.Var(output, "o", "write the records to this csv file")
	seed := &cmdline.SingleURL{}
	flagSet.Var(seed, "url", "first page of the listing, also the base for next page links")
	cf := flagSet.String("cookie-file", "", "load cookies from file")
	allowRedirect := cmdline.Boolean(true)
	flagSet.Var(&allowRedirect, "allow-redirect", "follow http redirects")
	summary := flagSet.Bool("summary", false, "print a table of the crawled pages")
	loglevel := logger.LevelFlag(global.Default_Loglevel)
	flagSet.Var(&loglevel, "loglevel", "set the least severe loglevel that will have its messages printed")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("Unexpected argument: %q", flagSet.Arg(0))
	}
	if len(output.Path) > 0 {
		cc.output = output.Path
	}
	if seed.URL != nil {
		addr, err := urlForSeed(seed.URL)
		if err != nil {
			return err
		}
		cc.seed = addr
	}
	if len(*cf) > 0 {
		cookies, err := cookiefile.Load(*cf)
		if err != nil {
			return err
		}
		cc.Cookies = cookies
	}
	cc.redirect = redirect.Policy(bool(allowRedirect))
	cc.summary = *summary
	log.SetLevel(int(loglevel))
	return nil
}

func (cc *CrawlContext) Output() string {
	return cc.output
}

func (cc *CrawlContext) Seed() string {
	return cc.seed
}

func (cc *CrawlContext) Summary() bool {
	return cc.summary
}

//Stream returns a fresh record stream starting at the seed url.
func (cc *CrawlContext) Stream() *Stream {
	return NewStream(
		cc.seed,
		NewFetcher(cc.Cookies, cc.redirect),
		NewExtractor(cc.Selectors),
		NewNextLinkPager(cc.seed, cc.Selectors),
	)
}
