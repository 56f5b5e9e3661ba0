package classify

// Status is a per-framework automation status. The zero value means the
// status could not be resolved for the case.
type Status string

const (
	StatusNone          Status = ""
	StatusNotAutomated  Status = "Not Automated"
	StatusToBeAutomated Status = "To Be Automated"
	StatusAutomated     Status = "Automated"
	StatusNotApplicable Status = "N/A"
)

// FinalStatus is the combined automation status of a case across frameworks.
type FinalStatus string

const (
	FinalAutomatedJava          FinalStatus = "Automated - Java"
	FinalAutomatedTestimDesktop FinalStatus = "Automated - Testim Desktop"
	FinalAutomatedTestimMobile  FinalStatus = "Automated - Testim Mobile"
	FinalAutomatedTestimBoth    FinalStatus = "Automated - Testim Both"
	FinalToBeAutomated          FinalStatus = "To Be Automated"
	FinalNotAutomated           FinalStatus = "Not Automated"
	FinalNotApplicable          FinalStatus = "N/A"
)

// IsAutomated reports whether the final status is any of the automated
// variants (Java or Testim).
func (f FinalStatus) IsAutomated() bool {
	switch f {
	case FinalAutomatedJava, FinalAutomatedTestimDesktop,
		FinalAutomatedTestimMobile, FinalAutomatedTestimBoth:
		return true
	}
	return false
}

// javaStatusCodes maps the Java framework's status field codes.
var javaStatusCodes = map[int]Status{
	1:  StatusNotAutomated,
	2:  StatusToBeAutomated,
	3:  StatusAutomated,
	4:  StatusNotApplicable,
	5:  StatusToBeAutomated,
	6:  StatusToBeAutomated,
	7:  StatusNotAutomated,
	8:  StatusAutomated,
	9:  StatusAutomated,
	10: StatusToBeAutomated,
}

// testimStatusCodes maps the Testim framework's status field codes. Same
// semantics per code as the Java table; code 10 was never defined for Testim.
var testimStatusCodes = map[int]Status{
	1: StatusNotAutomated,
	2: StatusToBeAutomated,
	3: StatusAutomated,
	4: StatusNotApplicable,
	5: StatusToBeAutomated,
	6: StatusToBeAutomated,
	7: StatusNotAutomated,
	8: StatusAutomated,
	9: StatusAutomated,
}

// MapJavaStatus maps a raw Java status code. StatusNone means the code was
// missing or unmapped; a case without a Java status is dropped upstream.
func MapJavaStatus(val any) Status {
	code, ok := coerceCode(val)
	if !ok {
		return StatusNone
	}
	return javaStatusCodes[code]
}

// MapTestimStatus maps a raw Testim status code. StatusNone means the code
// was missing or unmapped; that only removes the Testim vote from the final
// status, it never drops the case.
func MapTestimStatus(val any) Status {
	code, ok := coerceCode(val)
	if !ok {
		return StatusNone
	}
	return testimStatusCodes[code]
}

// ResolveFinalStatus combines the per-framework statuses of one case.
// Testim automation outranks Java; desktop+mobile Testim outranks either
// alone. Branches are checked top to bottom, first match wins.
func ResolveFinalStatus(java, testimDesktop, testimMobile Status) FinalStatus {
	javaAutomated := java == StatusAutomated
	desktopAutomated := testimDesktop == StatusAutomated
	mobileAutomated := testimMobile == StatusAutomated

	switch {
	case desktopAutomated && mobileAutomated:
		return FinalAutomatedTestimBoth
	case desktopAutomated && javaAutomated:
		return FinalAutomatedTestimDesktop
	case mobileAutomated && javaAutomated:
		return FinalAutomatedTestimMobile
	case desktopAutomated:
		return FinalAutomatedTestimDesktop
	case mobileAutomated:
		return FinalAutomatedTestimMobile
	case javaAutomated:
		return FinalAutomatedJava
	}

	if java == StatusNotApplicable || testimDesktop == StatusNotApplicable || testimMobile == StatusNotApplicable {
		return FinalNotApplicable
	}
	if java == StatusToBeAutomated || testimDesktop == StatusToBeAutomated || testimMobile == StatusToBeAutomated {
		return FinalToBeAutomated
	}
	return FinalNotAutomated
}
