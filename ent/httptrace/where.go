// Code generated by ent, DO NOT EDIT.

package httptrace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldProjectID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldURL, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldMethod, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldCompletedAt, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v int) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldStatusCode, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldError, v))
}

// Request applies equality check predicate on the "request" field. It's identical to RequestEQ.
func Request(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldRequest, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldResponse, v))
}

// DedupHash applies equality check predicate on the "dedup_hash" field. It's identical to DedupHashEQ.
func DedupHash(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldDedupHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContainsFold(FieldProjectID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContainsFold(FieldURL, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContainsFold(FieldMethod, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldCompletedAt, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v int) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v int) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...int) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...int) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v int) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v int) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v int) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v int) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldStatusCode, v))
}

// StatusCodeIsNil applies the IsNil predicate on the "status_code" field.
func StatusCodeIsNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIsNull(FieldStatusCode))
}

// StatusCodeNotNil applies the NotNil predicate on the "status_code" field.
func StatusCodeNotNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotNull(FieldStatusCode))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContainsFold(FieldError, v))
}

// RequestEQ applies the EQ predicate on the "request" field.
func RequestEQ(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldRequest, v))
}

// RequestNEQ applies the NEQ predicate on the "request" field.
func RequestNEQ(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldRequest, v))
}

// RequestIn applies the In predicate on the "request" field.
func RequestIn(vs ...[]byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldRequest, vs...))
}

// RequestNotIn applies the NotIn predicate on the "request" field.
func RequestNotIn(vs ...[]byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldRequest, vs...))
}

// RequestGT applies the GT predicate on the "request" field.
func RequestGT(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldRequest, v))
}

// RequestGTE applies the GTE predicate on the "request" field.
func RequestGTE(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldRequest, v))
}

// RequestLT applies the LT predicate on the "request" field.
func RequestLT(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldRequest, v))
}

// RequestLTE applies the LTE predicate on the "request" field.
func RequestLTE(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldRequest, v))
}

// RequestIsNil applies the IsNil predicate on the "request" field.
func RequestIsNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIsNull(FieldRequest))
}

// RequestNotNil applies the NotNil predicate on the "request" field.
func RequestNotNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotNull(FieldRequest))
}

// RequestHeadersIsNil applies the IsNil predicate on the "request_headers" field.
func RequestHeadersIsNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIsNull(FieldRequestHeaders))
}

// RequestHeadersNotNil applies the NotNil predicate on the "request_headers" field.
func RequestHeadersNotNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotNull(FieldRequestHeaders))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...[]byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...[]byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v []byte) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldResponse, v))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotNull(FieldResponse))
}

// ResponseHeadersIsNil applies the IsNil predicate on the "response_headers" field.
func ResponseHeadersIsNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIsNull(FieldResponseHeaders))
}

// ResponseHeadersNotNil applies the NotNil predicate on the "response_headers" field.
func ResponseHeadersNotNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotNull(FieldResponseHeaders))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotNull(FieldMetadata))
}

// DedupHashEQ applies the EQ predicate on the "dedup_hash" field.
func DedupHashEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldDedupHash, v))
}

// DedupHashNEQ applies the NEQ predicate on the "dedup_hash" field.
func DedupHashNEQ(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldDedupHash, v))
}

// DedupHashIn applies the In predicate on the "dedup_hash" field.
func DedupHashIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldDedupHash, vs...))
}

// DedupHashNotIn applies the NotIn predicate on the "dedup_hash" field.
func DedupHashNotIn(vs ...string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldDedupHash, vs...))
}

// DedupHashGT applies the GT predicate on the "dedup_hash" field.
func DedupHashGT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldDedupHash, v))
}

// DedupHashGTE applies the GTE predicate on the "dedup_hash" field.
func DedupHashGTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldDedupHash, v))
}

// DedupHashLT applies the LT predicate on the "dedup_hash" field.
func DedupHashLT(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldDedupHash, v))
}

// DedupHashLTE applies the LTE predicate on the "dedup_hash" field.
func DedupHashLTE(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldDedupHash, v))
}

// DedupHashContains applies the Contains predicate on the "dedup_hash" field.
func DedupHashContains(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContains(FieldDedupHash, v))
}

// DedupHashHasPrefix applies the HasPrefix predicate on the "dedup_hash" field.
func DedupHashHasPrefix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasPrefix(FieldDedupHash, v))
}

// DedupHashHasSuffix applies the HasSuffix predicate on the "dedup_hash" field.
func DedupHashHasSuffix(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldHasSuffix(FieldDedupHash, v))
}

// DedupHashIsNil applies the IsNil predicate on the "dedup_hash" field.
func DedupHashIsNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIsNull(FieldDedupHash))
}

// DedupHashNotNil applies the NotNil predicate on the "dedup_hash" field.
func DedupHashNotNil() predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotNull(FieldDedupHash))
}

// DedupHashEqualFold applies the EqualFold predicate on the "dedup_hash" field.
func DedupHashEqualFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEqualFold(FieldDedupHash, v))
}

// DedupHashContainsFold applies the ContainsFold predicate on the "dedup_hash" field.
func DedupHashContainsFold(v string) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldContainsFold(FieldDedupHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.HTTPTrace {
	return predicate.HTTPTrace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.HTTPTrace {
	return predicate.HTTPTrace(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrace applies the HasEdge predicate on the "trace" edge.
func HasTrace() predicate.HTTPTrace {
	return predicate.HTTPTrace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, TraceTable, TraceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTraceWith applies the HasEdge predicate on the "trace" edge with a given conditions (other predicates).
func HasTraceWith(preds ...predicate.Trace) predicate.HTTPTrace {
	return predicate.HTTPTrace(func(s *sql.Selector) {
		step := newTraceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HTTPTrace) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HTTPTrace) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HTTPTrace) predicate.HTTPTrace {
	return predicate.HTTPTrace(sql.NotPredicates(p))
}
