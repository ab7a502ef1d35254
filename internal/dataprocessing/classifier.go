package dataprocessing

import (
	"strings"

	"cellwatch/pkg/contracts/domain"
)

// Thresholds. The parse-time flag and the display filter of LinkPerf and
// FruRadio use different limits and are kept apart.
const (
	LinkLossFlagThreshold    = -3.5
	LinkLossDisplayThreshold = -3.49

	SfpPowerThreshold = -13.99
	TransportNodeID   = "TN"

	VSWRFlagThreshold    = 1.5
	VSWRDisplayThreshold = 1.49

	MfitrDeltaThreshold = 3.9

	mfarPassed = "passed"
)

func classifyLinkPerf(r domain.LinkPerfRecord) bool {
	return r.DlLossValue.Below(LinkLossFlagThreshold) || r.UlLossValue.Below(LinkLossFlagThreshold)
}

func displayLinkPerf(r domain.LinkPerfRecord) bool {
	return r.DlLossValue.Below(LinkLossDisplayThreshold) || r.UlLossValue.Below(LinkLossDisplayThreshold)
}

func classifyBoardSfp(r domain.BoardSfpRecord) bool {
	if !strings.EqualFold(strings.TrimSpace(r.ID), TransportNodeID) {
		return false
	}
	return r.TXdBmValue.Below(SfpPowerThreshold) || r.RXdBmValue.Below(SfpPowerThreshold)
}

func classifyFruRadio(r domain.FruRadioRecord) bool {
	return r.VSWRValue.Above(VSWRFlagThreshold)
}

func displayFruRadio(r domain.FruRadioRecord) bool {
	return r.VSWRValue.Above(VSWRDisplayThreshold)
}

func classifyMfitr(r domain.MfitrRecord) bool {
	return r.DeltaValue.Above(MfitrDeltaThreshold)
}

func classifyMfar(r domain.MfarRecord) bool {
	issue := strings.TrimSpace(r.Issue)
	return issue != "" && !strings.EqualFold(issue, mfarPassed)
}
