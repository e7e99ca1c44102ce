/*
Package feature describes the columns of a tabular dataset: the properties
observed for every row and the class label they predict.
*/
package feature

import (
	"fmt"
	"strconv"
)

/*
Feature represents a property that can be observed on a row.

Its Valid method reports whether a value is acceptable for the feature and
its Parse method converts the textual representation found in input files
into such a value.
*/
type Feature interface {
	Name() string
	Valid(interface{}) (bool, error)
	Parse(string) (interface{}, error)
}

/*
DiscreteFeature represents a property that can be observed and that can only
take a value among a finite set. Its values are strings.
*/
type DiscreteFeature struct {
	name            string
	availableValues []string
}

/*
ContinuousFeature represents a property that can be observed and that can take
a numeric value. Its values are float64.
*/
type ContinuousFeature struct {
	name string
}

/*
NewDiscreteFeature takes a name string and a slice of available value strings
and returns a discrete feature with the given names and available values.
*/
func NewDiscreteFeature(name string, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, availableValues}
}

/*
NewContinuousFeature takes a name string and returns a continuous feature with
the given name.
*/
func NewContinuousFeature(name string) *ContinuousFeature {
	return &ContinuousFeature{name}
}

/*
Name returns a string with the name of the feature
*/
func (df *DiscreteFeature) Name() string {
	return df.name
}

/*
Valid receives an interface value and returns a boolean and an error. When the
value parameter is included in the available values for the feature, the method
returns true and nil. Otherwise it returns false and an error describing the
reason.
*/
func (df *DiscreteFeature) Valid(value interface{}) (bool, error) {
	vs, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("discrete feature %s expects string value, got %T value", df.Name(), value)
	}
	for _, av := range df.availableValues {
		if av == vs {
			return true, nil
		}
	}
	return false, fmt.Errorf("discrete feature %s got unknown value %s", df.Name(), vs)
}

/*
Parse takes a string and returns it as a value of the feature, or an error if
it is not one of the available values.
*/
func (df *DiscreteFeature) Parse(s string) (interface{}, error) {
	if _, err := df.Valid(s); err != nil {
		return nil, err
	}
	return s, nil
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return df.availableValues
}

func (df *DiscreteFeature) String() string {
	return df.name
}

/*
Name returns a string with the name of the feature
*/
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

/*
Valid receives an interface value and returns a boolean and an error. When the
value parameter is a float64 it returns true and nil, otherwise it returns
false and an error describing the reason.
*/
func (cf *ContinuousFeature) Valid(value interface{}) (bool, error) {
	_, ok := value.(float64)
	if !ok {
		return false, fmt.Errorf("continuous feature %s expects float64 value, got %T value", cf.Name(), value)
	}
	return true, nil
}

/*
Parse takes a string and returns the float64 it represents or an error.
*/
func (cf *ContinuousFeature) Parse(s string) (interface{}, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("continuous feature %s: parsing %q: %v", cf.Name(), s, err)
	}
	return v, nil
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}

/*
Index takes a slice of features and a name and returns the position of the
feature with that name in the slice, or -1 if there is none.
*/
func Index(features []Feature, name string) int {
	for i, f := range features {
		if f.Name() == name {
			return i
		}
	}
	return -1
}

/*
Names returns the names of the given features in order.
*/
func Names(features []Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name()
	}
	return names
}
