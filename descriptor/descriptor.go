// Package descriptor decodes link descriptors from YAML (or JSON) documents.
//
// A document is either a single descriptor or a sequence of them:
//
//	- rel: google
//	  target: https://www.google.com
//	  method: GET
//	  elements: [mail]
//	  params:
//	    app: "42"
//	- rel: video
//	  target: tag:nextthought.com,2011-10:BLEACH-NTIVideo-Ichigo
//	  href_only: true
//	  frame: {height: 480, width: 640}
//
// Params keep the order in which they appear in the document.
package descriptor

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nextthought/links"
	"github.com/nextthought/links/traversal"
)

type Frame struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

type Descriptor struct {
	Rel            string   `yaml:"rel"`
	Target         string   `yaml:"target"`
	Elements       []string `yaml:"elements"`
	TargetMimeType string   `yaml:"target_mime_type"`
	Method         string   `yaml:"method"`
	Title          string   `yaml:"title"`

	// The resource path of the link's owner.
	Creator string `yaml:"creator"`

	Params                 yaml.Node `yaml:"params"`
	IgnoreTargetProperties bool      `yaml:"ignore_target_properties"`
	HrefOnly               bool      `yaml:"href_only"`
	Frame                  *Frame    `yaml:"frame"`
}

func (d *Descriptor) params() ([]links.Param, error) {
	switch d.Params.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode:
	default:
		return nil, errors.Errorf("line %v: params must be a mapping", d.Params.Line)
	}
	var ret []links.Param
	for i := 0; i+1 < len(d.Params.Content); i += 2 {
		k, v := d.Params.Content[i], d.Params.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("line %v: param values must be scalars", k.Line)
		}
		ret = append(ret, links.Param{Key: k.Value, Value: v.Value})
	}
	return ret, nil
}

// Link constructs the described link. Descriptors with a frame produce a *links.FramedLink.
func (d *Descriptor) Link() (links.Linker, error) {
	params, err := d.params()
	if err != nil {
		return nil, err
	}
	opts := []links.Option{
		links.WithElements(d.Elements...),
		links.WithTargetMimeType(d.TargetMimeType),
		links.WithMethod(d.Method),
		links.WithTitle(d.Title),
	}
	for _, p := range params {
		opts = append(opts, links.WithParam(p.Key, p.Value))
	}
	if d.IgnoreTargetProperties {
		opts = append(opts, links.IgnoreTargetProperties())
	}
	if d.HrefOnly {
		opts = append(opts, links.HrefOnly())
	}
	if d.Creator != "" {
		opts = append(opts, links.WithCreator(traversal.Path(d.Creator)))
	}

	var target any
	if d.Target != "" {
		target = d.Target
	}
	if d.Frame != nil {
		return links.NewFramed(d.Rel, target, d.Frame.Height, d.Frame.Width, opts...)
	}
	return links.New(d.Rel, target, opts...)
}

// Decode reads every descriptor from r.
func Decode(r io.Reader) ([]Descriptor, error) {
	var ret []Descriptor
	dec := yaml.NewDecoder(r)
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err == io.EOF {
			return ret, nil
		} else if err != nil {
			return nil, errors.Wrap(err, "error decoding descriptors")
		}
		if len(doc.Content) == 0 {
			continue
		}
		switch root := doc.Content[0]; root.Kind {
		case yaml.SequenceNode:
			var descriptors []Descriptor
			if err := root.Decode(&descriptors); err != nil {
				return nil, errors.Wrap(err, "error decoding descriptors")
			}
			ret = append(ret, descriptors...)
		case yaml.MappingNode:
			var d Descriptor
			if err := root.Decode(&d); err != nil {
				return nil, errors.Wrap(err, "error decoding descriptor")
			}
			ret = append(ret, d)
		default:
			return nil, errors.Errorf("line %v: expected a descriptor or a sequence of descriptors", root.Line)
		}
	}
}

// Links decodes r and constructs every described link.
func Links(r io.Reader) ([]links.Linker, error) {
	descriptors, err := Decode(r)
	if err != nil {
		return nil, err
	}
	ret := make([]links.Linker, 0, len(descriptors))
	for i := range descriptors {
		l, err := descriptors[i].Link()
		if err != nil {
			return nil, errors.Wrapf(err, "descriptor %v", i)
		}
		ret = append(ret, l)
	}
	return ret, nil
}
