// Command linkrender renders link descriptor files into their externalized JSON form.
package main

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/nextthought/links"
	"github.com/nextthought/links/descriptor"
	"github.com/nextthought/links/jsonapi"
	"github.com/nextthought/links/traversal"
)

func loadLinks(paths []string) ([]links.Linker, error) {
	var ret []links.Linker
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		ls, err := descriptor.Links(f)
		f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "error loading %v", path)
		}
		ret = append(ret, ls...)
	}
	return ret, nil
}

func Run(stdout, stderr io.Writer, args ...string) error {
	flags := pflag.NewFlagSet("linkrender", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	input := flags.StringArrayP("input", "i", nil, "the descriptor files to render")
	root := flags.String("root", "", "the global root path that identifier links are placed under")
	site := flags.String("site", "", "the site path used when no global root is given")
	format := flags.String("format", "links", "the output format: links or jsonapi")
	bestEffort := flags.Bool("best-effort", false, "drop links that cannot be rendered instead of failing")
	logLevel := flags.String("log-level", "warning", "the minimum level of log messages")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if len(*input) == 0 {
		return fmt.Errorf("at least one --input is required")
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(level)

	cfg := &links.Config{
		Logger: logger,
	}
	if *root != "" {
		rootPath := *root
		cfg.Collaborators.GlobalRootPath = func() (string, error) {
			return rootPath, nil
		}
	}
	if *site != "" {
		cfg.Site = traversal.Path(*site)
	}
	renderer := links.NewRenderer(cfg)

	ls, err := loadLinks(*input)
	if err != nil {
		return err
	}

	var output any
	switch *format {
	case "links":
		items := make([]any, 0, len(ls))
		for _, l := range ls {
			items = append(items, l)
		}
		if *bestEffort {
			doc := links.ExternalMapping{links.LinksField: items}
			renderer.Decorate(doc)
			output = doc[links.LinksField]
		} else {
			for i, l := range ls {
				if items[i], err = renderer.Render(l, nil); err != nil {
					return errors.Wrapf(err, "error rendering %v", l.AsLink())
				}
			}
			output = items
		}
	case "jsonapi":
		linksObject, err := jsonapi.NewLinksObject(renderer, nil, ls...)
		if err != nil {
			return err
		}
		output = jsonapi.NewResponseDocument(nil, linksObject)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(body))
	return err
}

func main() {
	if err := Run(os.Stdout, os.Stderr, os.Args[1:]...); err != nil {
		if err != pflag.ErrHelp {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}
