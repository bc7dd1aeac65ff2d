package model

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListParams carries the pagination values extracted from the query string.
// They are parsed for every request but deliberately not applied to the
// store query: the listing endpoint returns the full match set.
type ListParams struct {
	Page  int
	Limit int
	Skip  int
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// clauseFunc merges one recognized query parameter into the filter document.
type clauseFunc func(filter bson.M, value string) error

// clauseEntry binds a parameter name to its clause builder. The table is
// ordered so that `search` is evaluated last: an empty search must force an
// empty result set even when other clauses target the same field.
type clauseEntry struct {
	param string
	build clauseFunc
}

var listClauses = []clauseEntry{
	{"_id", idClause},
	{"genres", genreOperatorClause("$in")},
	{"allGenres", genreOperatorClause("$all")},
	{"excludeGenres", genreOperatorClause("$nin")},
	{"langue", exactClause("langue")},
	{"language", exactClause("langue")},
	{"titre", regexClause("titre")},
	{"title", regexClause("titre")},
	{"auteur", regexClause("auteur")},
	{"author", regexClause("auteur")},
	{"search", searchClause},
}

// BuildListFilter converts raw query parameters into a MongoDB filter
// document. Each recognized parameter contributes one clause; clauses are
// implicitly ANDed, and operators targeting the same field merge into a
// single field document. Unrecognized parameters are ignored.
func BuildListFilter(query map[string]string) (bson.M, ListParams, error) {
	params := extractListParams(query)

	filter := bson.M{}
	for _, entry := range listClauses {
		value, ok := query[entry.param]
		if !ok {
			continue
		}
		if err := entry.build(filter, value); err != nil {
			return nil, params, err
		}
	}

	return filter, params, nil
}

func extractListParams(query map[string]string) ListParams {
	limit, err := strconv.Atoi(query["limit"])
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	page, err := strconv.Atoi(query["page"])
	if err != nil || page <= 0 {
		page = defaultPage
	}
	return ListParams{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// addOperator merges an operator clause into the field's document so that
// e.g. genres=... and excludeGenres=... both land under "genre".
func addOperator(filter bson.M, field, operator string, values interface{}) {
	doc, ok := filter[field].(bson.M)
	if !ok {
		doc = bson.M{}
		filter[field] = doc
	}
	doc[operator] = values
}

// idClause matches documents whose id satisfies membership against the
// full given set. Ids are singular, so $all amounts to an exact match.
func idClause(filter bson.M, value string) error {
	raw := strings.Split(value, ",")
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return fmt.Errorf("%w: _id %q", ErrInvalidFilter, s)
		}
		ids = append(ids, id)
	}
	addOperator(filter, "_id", "$all", ids)
	return nil
}

func genreOperatorClause(operator string) clauseFunc {
	return func(filter bson.M, value string) error {
		addOperator(filter, "genre", operator, strings.Split(value, ","))
		return nil
	}
}

func exactClause(field string) clauseFunc {
	return func(filter bson.M, value string) error {
		filter[field] = value
		return nil
	}
}

func regexClause(field string) clauseFunc {
	return func(filter bson.M, value string) error {
		filter[field] = bson.M{"$regex": value, "$options": "i"}
		return nil
	}
}

// searchClause runs a full-text search over the indexed text fields. A
// blank search string is not "no filter": it forces a clause no document
// can satisfy, so the result set is empty.
func searchClause(filter bson.M, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		filter["_id"] = bson.M{"$exists": false}
		return nil
	}
	filter["$text"] = bson.M{
		"$search":             trimmed,
		"$caseSensitive":      false,
		"$diacriticSensitive": false,
	}
	return nil
}
