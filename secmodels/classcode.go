/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import "fmt"

// ClassCode is the stable tag identifying an entity kind. Registry lookups and
// generic record construction are keyed by it.
type ClassCode int32

const (
	ClassCodeCluster     ClassCode = 0xa001
	ClassCodeISOCtry     ClassCode = 0xa004
	ClassCodeISOCtryCcy  ClassCode = 0xa005
	ClassCodeISOCcy      ClassCode = 0xa007
	ClassCodeSecDevice   ClassCode = 0xa00b
	ClassCodeSecGroup    ClassCode = 0xa00c
	ClassCodeSecGrpMemb  ClassCode = 0xa00d
	ClassCodeService     ClassCode = 0xa00e
	ClassCodeSecSession  ClassCode = 0xa010
	ClassCodeSecUser     ClassCode = 0xa011
	ClassCodeServiceType ClassCode = 0xa012
	ClassCodeTenant      ClassCode = 0xa015
)

var classCodeNames = map[ClassCode]string{
	ClassCodeCluster:     "Cluster",
	ClassCodeISOCtry:     "ISOCtry",
	ClassCodeISOCtryCcy:  "ISOCtryCcy",
	ClassCodeISOCcy:      "ISOCcy",
	ClassCodeSecDevice:   "SecDevice",
	ClassCodeSecGroup:    "SecGroup",
	ClassCodeSecGrpMemb:  "SecGrpMemb",
	ClassCodeService:     "Service",
	ClassCodeSecSession:  "SecSession",
	ClassCodeSecUser:     "SecUser",
	ClassCodeServiceType: "ServiceType",
	ClassCodeTenant:      "Tenant",
}

// ClassCodes returns every known class code in ascending order.
func ClassCodes() []ClassCode {
	return []ClassCode{
		ClassCodeCluster,
		ClassCodeISOCtry,
		ClassCodeISOCtryCcy,
		ClassCodeISOCcy,
		ClassCodeSecDevice,
		ClassCodeSecGroup,
		ClassCodeSecGrpMemb,
		ClassCodeService,
		ClassCodeSecSession,
		ClassCodeSecUser,
		ClassCodeServiceType,
		ClassCodeTenant,
	}
}

// String returns the entity kind name, or the hex code for unknown values.
func (c ClassCode) String() string {
	if name, ok := classCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ClassCode(0x%04x)", int32(c))
}
