// Package calculator turns an AWS Pricing Calculator export into a reservation summary.
//
// The pipeline is strictly forward: the detailed-estimate section is located in the raw
// export, parsed into records, each record is classified and priced against a fixed table
// of discount rules, the items are grouped by region and service family, and the groups
// are rendered as the pt-BR report text. Every function here is pure; callers pass all
// options explicitly and nothing is read from the environment.
package calculator
