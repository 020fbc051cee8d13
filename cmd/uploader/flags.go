package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"Muploader/internal/app"
	"Muploader/internal/types"
)

type options struct {
	platforms   string
	title       string
	description string
	video       string
	image       string
	url         string
	sourceID    string
	manifest    string
	at          string
	env         string
	resume      bool
	history     int
	deepLink    string
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("uploader", flag.ContinueOnError)
	fs.StringVar(&o.platforms, "platforms", "", "comma separated platforms ("+platformList()+")")
	fs.StringVar(&o.title, "title", "", "post title")
	fs.StringVar(&o.description, "description", "", "post description")
	fs.StringVar(&o.video, "video", "", "video file")
	fs.StringVar(&o.image, "image", "", "thumbnail image")
	fs.StringVar(&o.url, "url", "", "link attached to the post")
	fs.StringVar(&o.sourceID, "source-id", "", "caller reference echoed in progress events")
	fs.StringVar(&o.manifest, "manifest", "", "JSON manifest with one or more videos")
	fs.StringVar(&o.at, "at", "", "run later: RFC3339 time, \"2006-01-02 15:04\" or a cron spec")
	fs.StringVar(&o.env, "env", "", "extra .env file")
	fs.BoolVar(&o.resume, "resume", false, "run the stored scheduled tasks that are still due")
	fs.IntVar(&o.history, "history", 0, "print the last N upload results and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: uploader [flags] [%s://upload?...]\n", app.DeepLinkScheme)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		o.deepLink = fs.Arg(0)
	default:
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args()[1:], " "))
	}
	if o.manifest != "" && o.deepLink != "" {
		return nil, errors.New("-manifest and a deep link cannot be combined")
	}
	if o.history < 0 {
		return nil, errors.New("-history must not be negative")
	}
	return o, nil
}

func (o *options) envFiles() []string {
	files := []string{".env"}
	if exe, err := os.Executable(); err == nil {
		files = append(files, exe+".env")
	}
	if o.env != "" {
		files = append(files, o.env)
	}
	return files
}

// hasRequest reports whether the flags describe videos to upload
func (o *options) hasRequest() bool {
	return o.manifest != "" || o.deepLink != "" || o.video != "" || o.title != ""
}

// request builds the upload request from a manifest, a deep link or the
// single-video flags. -platforms fills in platforms the source leaves out.
func (o *options) request() (*app.Request, error) {
	platforms, err := app.ParsePlatforms(o.platforms)
	if err != nil {
		return nil, err
	}

	var req *app.Request
	switch {
	case o.manifest != "":
		req, err = app.LoadManifest(o.manifest)
	case o.deepLink != "":
		req, err = app.ParseDeepLink(o.deepLink)
	default:
		req = &app.Request{Videos: []types.VideoPayload{{
			Title:       o.title,
			Description: o.description,
			Video:       o.video,
			Image:       o.image,
			URL:         o.url,
			SourceID:    o.sourceID,
		}}}
	}
	if err != nil {
		return nil, err
	}
	req.Merge(platforms)
	return req, nil
}

func platformList() string {
	names := make([]string, 0, 9)
	for _, p := range types.AllPlatforms() {
		names = append(names, p.String())
	}
	return strings.Join(names, ",")
}
