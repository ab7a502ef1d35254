// Package cellref maps parsed records to the logical cells they affect.
//
// Cell codes are CS0 followed by a family (AE, AN, FM, FT, AM, AT) and a
// number. Families come in complementary pairs; a record yields at most
// two "A/B" groups, rendered as "AB ; CD".
package cellref
