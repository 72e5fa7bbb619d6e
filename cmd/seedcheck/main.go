package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/wellness-hub/wellness/internal/progress"
	"github.com/wellness-hub/wellness/internal/seed"
)

var opts = struct {
	Seed string `long:"seed" env:"SEED" description:"path to seed yaml, embedded seed is checked when empty"`
	Dump bool   `long:"dump" description:"dump decoded seed to stdout"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "seedcheck"
	parser.LongDescription = "Seed file validator"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Infof("%+v", opts)

	var s *seed.Seed
	if opts.Seed == "" {
		s = seed.Default()
	} else if s, err = seed.LoadFile(opts.Seed); err != nil {
		logrus.WithError(err).Fatal("seed is invalid")
	}

	p := progress.Tasks(s.Tasks)
	l := progress.Lessons(s.Lessons)

	logrus.WithFields(logrus.Fields{
		"tasks":      len(s.Tasks),
		"lessons":    len(s.Lessons),
		"posts":      len(s.Posts),
		"categories": len(s.Categories),
		"articles":   len(s.Articles),
		"moods":      len(s.Moods),
		"icons":      len(s.Icons),
	}).Info("seed is valid")
	logrus.WithField("percentage", p.Percentage).Infof("%d of %d tasks completed", p.Completed, p.Total)
	logrus.WithField("percentage", l.Percentage).Infof("%d of %d lessons completed", l.Completed, l.Total)

	if opts.Dump {
		spew.Fdump(os.Stdout, s)
	}
}
