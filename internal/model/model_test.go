package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tj/assert"
)

func TestStationUnmarshalNamingVariants(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		expectedDep string
		expectedLoc *Coordinate
		expectedID  *int64
	}{
		{
			name:        "long names",
			body:        `{"id": 7, "nombre": "Pilar", "departamento": "Ñeembucú", "latitud": -26.8667, "longitud": -58.3}`,
			expectedDep: "Ñeembucú",
			expectedLoc: &Coordinate{Lat: -26.8667, Lng: -58.3},
			expectedID:  int64Ptr(7),
		},
		{
			name:        "short names",
			body:        `{"nombre": "Paraguari", "depto": "Paraguarí", "lat": -25.6167, "lng": -57.15}`,
			expectedDep: "Paraguarí",
			expectedLoc: &Coordinate{Lat: -25.6167, Lng: -57.15},
		},
		{
			name:        "unlocated",
			body:        `{"id": 3, "nombre": "Quyquyho", "departamento": "Paraguarí", "latitud": null, "longitud": null}`,
			expectedDep: "Paraguarí",
			expectedID:  int64Ptr(3),
		},
		{
			name:        "half located decodes as unlocated",
			body:        `{"id": 4, "nombre": "Pozo Colorado", "departamento": "Presidente Hayes", "latitud": -23.48}`,
			expectedDep: "Presidente Hayes",
			expectedID:  int64Ptr(4),
		},
		{
			name:        "zero coordinates stay located",
			body:        `{"nombre": "Null Island", "departamento": "Sea", "latitud": 0, "longitud": 0}`,
			expectedDep: "Sea",
			expectedLoc: &Coordinate{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var st Station
			err := json.Unmarshal([]byte(tc.body), &st)
			assert.Nil(t, err)

			assert.Equal(t, tc.expectedDep, st.Department)
			assert.Equal(t, tc.expectedLoc, st.Location)
			assert.Equal(t, tc.expectedID, st.ID)
		})
	}
}

func TestStationMarshalCanonical(t *testing.T) {
	st := Station{ID: int64Ptr(1), Name: "Pilar", Department: "Ñeembucú", Location: &Coordinate{Lat: -26.8, Lng: -58.3}}

	b, err := json.Marshal(st)
	assert.Nil(t, err)
	assert.JSONEq(t, `{"id":1,"nombre":"Pilar","departamento":"Ñeembucú","latitud":-26.8,"longitud":-58.3}`, string(b))

	b, err = json.Marshal(Station{Name: "Caazapa", Department: "Caazapá"})
	assert.Nil(t, err)
	assert.JSONEq(t, `{"nombre":"Caazapa","departamento":"Caazapá","latitud":null,"longitud":null}`, string(b))
}

func TestStationClone(t *testing.T) {
	st := Station{ID: int64Ptr(1), Name: "Pilar", Location: &Coordinate{Lat: 1, Lng: 2}}
	c := st.Clone()
	c.Location.Lat = 10
	*c.ID = 2

	assert.Equal(t, 1.0, st.Location.Lat)
	assert.Equal(t, int64(1), *st.ID)
}

func TestLocationPatch(t *testing.T) {
	b, err := json.Marshal(LocationPatch(Coordinate{Lat: -25.1, Lng: -57.2}))
	assert.Nil(t, err)
	assert.JSONEq(t, `{"latitud":-25.1,"longitud":-57.2}`, string(b))
}

func TestParseMonth(t *testing.T) {
	cases := []struct {
		in       string
		expected Month
		fails    bool
	}{
		{in: "1", expected: 1},
		{in: "09", expected: 9},
		{in: "Enero", expected: 1},
		{in: "SETIEMBRE", expected: 9},
		{in: "dic", expected: 12},
		{in: "Ago", expected: 8},
		{in: " marzo ", expected: 3},
		{in: "13", fails: true},
		{in: "", fails: true},
		{in: "xyz", fails: true},
		{in: "en", fails: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			m, err := ParseMonth(tc.in)
			if tc.fails {
				assert.True(t, errors.Is(err, ErrUnknownMonth))
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, m)
		})
	}
}

func TestMonthJSON(t *testing.T) {
	req := SeriesRequest{Location: "Pilar", Month: 9, Year: 2020}
	b, err := json.Marshal(req)
	assert.Nil(t, err)
	assert.JSONEq(t, `{"ubicacion":"Pilar","mes":"Setiembre","anho":2020}`, string(b))

	b, err = json.Marshal(SeriesRequest{Location: "Pilar"})
	assert.Nil(t, err)
	assert.JSONEq(t, `{"ubicacion":"Pilar"}`, string(b))

	var m Month
	assert.Nil(t, json.Unmarshal([]byte(`"febrero"`), &m))
	assert.Equal(t, Month(2), m)
	assert.Nil(t, json.Unmarshal([]byte(`11`), &m))
	assert.Equal(t, Month(11), m)
}

func TestFoldAndSameMonth(t *testing.T) {
	assert.Equal(t, "asuncion", Fold("Asunción"))
	assert.Equal(t, "neembucu", Fold("Ñeembucú"))
	assert.True(t, SameMonth("Setiembre", "9"))
	assert.True(t, SameMonth("set", "SETIEMBRE"))
	assert.False(t, SameMonth("Enero", "Febrero"))
}

func int64Ptr(v int64) *int64 {
	return &v
}
