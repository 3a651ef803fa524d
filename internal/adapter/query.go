// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-issue-desk/models"
)

// queryBuilder appends key=value pairs in insertion order. url.Values is not
// used because its Encode sorts keys.
type queryBuilder struct {
	sb strings.Builder
}

func (q *queryBuilder) add(key, value string) {
	if q.sb.Len() > 0 {
		q.sb.WriteByte('&')
	}
	q.sb.WriteString(url.QueryEscape(key))
	q.sb.WriteByte('=')
	q.sb.WriteString(url.QueryEscape(value))
}

func (q *queryBuilder) addString(key, value string) {
	if value != "" {
		q.add(key, value)
	}
}

func (q *queryBuilder) addInt(key string, value int) {
	if value != 0 {
		q.add(key, strconv.Itoa(value))
	}
}

// withQuery returns path followed by "?query", or path unchanged when no
// parameter was added.
func (q *queryBuilder) withQuery(path string) string {
	if q.sb.Len() == 0 {
		return path
	}
	return path + "?" + q.sb.String()
}

func allIssuesPath(filter models.IssueFilter) string {
	var q queryBuilder
	q.addString("status", string(filter.Status))
	q.addString("category", filter.Category)
	q.addInt("page", filter.Page)
	q.addInt("limit", filter.Limit)
	return q.withQuery(issuesEndpoint)
}

func myIssuesPath(filter models.MyIssueFilter) string {
	var q queryBuilder
	q.addString("status", string(filter.Status))
	q.addInt("page", filter.Page)
	q.addInt("limit", filter.Limit)
	return q.withQuery(myIssuesEndpoint)
}
