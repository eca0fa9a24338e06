package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"lab_management/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB limit on actions in one TransactWriteItems
// call.
const maxTransactItems = 100

// ErrTooManyLines rejects a selection change whose line delta cannot be
// written atomically.
var ErrTooManyLines = entities.NewValidationError("selection change touches too many lines to save at once")

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// itemDecoder parses the string encoded attributes of one stored item. It
// keeps the first failure, so a decode function reads every field and checks
// err once.
type itemDecoder struct {
	collection string
	key        string
	err        error
}

func newItemDecoder(collection, key string) *itemDecoder {
	return &itemDecoder{collection: collection, key: key}
}

// time reads an RFC 3339 timestamp. An empty attribute is the zero time.
func (d *itemDecoder) time(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.fail(field, "is not an RFC 3339 timestamp")
	}
	return t
}

func (d *itemDecoder) number(field, s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		d.fail(field, "is not a number")
	}
	return v
}

func (d *itemDecoder) fail(field, reason string) {
	if d.err != nil {
		return
	}
	d.err = &entities.AnomalyError{
		Collection: d.collection,
		Key:        d.key,
		Reason:     fmt.Sprintf("stored %s %s", field, reason),
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// isTransactionConditionFailed reports whether a transaction was cancelled
// because one of its condition expressions did not hold.
func isTransactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, r := range tce.CancellationReasons {
		if r.Code != nil && *r.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

func lineKey(resultID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"result_id": &types.AttributeValueMemberS{Value: resultID},
		"id":        &types.AttributeValueMemberS{Value: id},
	}
}
