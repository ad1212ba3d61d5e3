package crictez

import "time"

// ProviderName identifies this provider in logs and metrics.
const ProviderName = "crictez"

const (
	defaultBaseURL     = "https://api.crictez.in/v7"
	defaultHTTPTimeout = 10 * time.Second

	pathHomeList  = "homeList"
	pathLiveMatch = "liveMatch"
	pathMatchInfo = "matchInfo"
)
