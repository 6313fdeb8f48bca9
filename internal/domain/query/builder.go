// Package query turns search text and applied filters into request
// descriptors for the job board API.
package query

import (
	"net/url"
	"strings"

	"github.com/honeycarbs/jobboard/pkg/jobsapi"
)

const (
	jobsPath = "/jobs"

	ParamEmploymentType = "employment_type"
	ParamMinimumPackage = "minimum_package"
	ParamSearch         = "search"
)

// Param is one ordered query parameter, as the transport sends it
type Param = jobsapi.Param

// Descriptor fully describes an outbound GET. Values are raw; escaping
// happens at the transport.
type Descriptor struct {
	Path   string
	Params []Param
}

// Encode renders the descriptor as path plus ordered, escaped query with
// the same encoder the transport uses. Equal descriptors always encode to
// identical bytes.
func (d Descriptor) Encode() string {
	if len(d.Params) == 0 {
		return d.Path
	}
	return d.Path + "?" + jobsapi.EncodeParams(d.Params)
}

// Build maps a search term and filters to the list descriptor.
//
// The term is passed verbatim. Employment types are comma-joined in the
// order given and an empty set becomes an empty value. An absent minimum
// salary is sent as an empty string rather than omitted, matching the shape
// the API has always received.
func Build(term string, employmentTypes []string, minimumSalary string) Descriptor {
	return Descriptor{
		Path: jobsPath,
		Params: []Param{
			{Key: ParamEmploymentType, Value: strings.Join(employmentTypes, ",")},
			{Key: ParamMinimumPackage, Value: minimumSalary},
			{Key: ParamSearch, Value: term},
		},
	}
}

// BuildDetail maps a job id to its detail descriptor
func BuildDetail(id string) Descriptor {
	return Descriptor{Path: jobsPath + "/" + url.PathEscape(id)}
}
