package common

import (
	"encoding/json"

	"github.com/Masterminds/semver"
)

var (
	ZeroVersion Version = Version{}
)

type Version semver.Version

func NewVersion(s string) (Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, InvalidVersionError.New(err)
	}

	return Version(*v), nil
}

func MustParseVersion(s string) Version {
	v, err := NewVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	p := semver.Version(v)
	return (&p).String()
}

func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Version) UnmarshalJSON(b []byte) error {
	var n string
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	} else if s, err := semver.NewVersion(n); err != nil {
		return InvalidVersionError.New(err)
	} else {
		*v = Version(*s)
	}

	return nil
}

func (v Version) MarshalBinary() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalBinary(b []byte) error {
	s, err := NewVersion(string(b))
	if err != nil {
		return err
	}

	*v = s

	return nil
}

func (v Version) Equal(n Version) bool {
	a := semver.Version(v)
	b := semver.Version(n)

	return (&a).Equal(&b)
}
