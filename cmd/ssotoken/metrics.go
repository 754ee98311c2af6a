// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	sso "github.com/fastcomments/sso-go"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/xmidt-org/touchstone"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	tokenCounterName  = "token_count"
	hashCounterName   = "hash_count"
	sourceCounterName = "source_changed_count"
	resetCounterName  = "token_reset_count"
	tokenSizeName     = "token_size_bytes"
)

// newMeasure creates the prometheus registry and the sso metrics backed by it.
func newMeasure(logger *zap.Logger) (*sso.Measure, prometheus.Gatherer, error) {
	cfg := touchstone.Config{
		DefaultNamespace:        "fastcomments",
		DefaultSubsystem:        "sso",
		DisableGoCollector:      true,
		DisableProcessCollector: true,
	}

	g, r, err := touchstone.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := touchstone.NewFactory(cfg, logger, r)

	token, err1 := f.NewCounterVec(prometheus.CounterOpts{
		Name: tokenCounterName,
		Help: "the number of tokens prepared, by outcome",
	}, "outcome")
	hash, err2 := f.NewCounterVec(prometheus.CounterOpts{
		Name: hashCounterName,
		Help: "the number of verification hashes computed, by outcome",
	}, "outcome")
	source, err3 := f.NewCounterVec(prometheus.CounterOpts{
		Name: sourceCounterName,
		Help: "the number of times the token source was set, by mode",
	}, "mode")
	reset, err4 := f.NewCounterVec(prometheus.CounterOpts{
		Name: resetCounterName,
		Help: "the number of times the cached token was reset",
	})
	size, err5 := f.NewHistogramVec(prometheus.HistogramOpts{
		Name:    tokenSizeName,
		Help:    "the size of the prepared tokens",
		Buckets: prometheus.ExponentialBuckets(64, 2, 6),
	})

	if err := multierr.Combine(err1, err2, err3, err4, err5); err != nil {
		return nil, nil, err
	}

	sizeVec, ok := size.(*prometheus.HistogramVec)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected histogram type %T for %s", size, tokenSizeName)
	}

	m := sso.Measure{
		Token: sso.MeasureToken{
			Counter: kitprometheus.NewCounter(token),
		},
		Hash: sso.MeasureHash{
			Counter: kitprometheus.NewCounter(hash),
		},
		SourceChanged: sso.MeasureSourceChanged{
			Counter: kitprometheus.NewCounter(source),
		},
		TokenReset: kitprometheus.NewCounter(reset),
		TokenSize:  kitprometheus.NewHistogram(sizeVec),
	}

	return &m, g, nil
}

// writeMetrics writes the gathered metrics in the prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
