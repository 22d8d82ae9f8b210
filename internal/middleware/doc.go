// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

/*
Package middleware provides HTTP middleware components.

The package implements infrastructure middleware for gzip compression,
request ID tracking, and Prometheus metrics instrumentation. These wrap
http.HandlerFunc directly so they compose with the chi router's own
middleware (CORS, rate limiting) in the API layer.

The typical stack for an endpoint is:

	middleware.PrometheusMetrics( // Layer 1: Metrics
	    middleware.Compression(    // Layer 2: Gzip
	        middleware.RequestID(  // Layer 3: Request tracking
	            handler,           // Layer 4: Business logic
	        ),
	    ),
	)
*/
package middleware
