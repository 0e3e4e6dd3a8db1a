package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPage_Offset(t *testing.T) {
	require.Equal(t, 0, Page{Page: 1, PerPage: 10}.Offset())
	require.Equal(t, 10, Page{Page: 2, PerPage: 10}.Offset())
	require.Equal(t, 25, Page{Page: 6, PerPage: 5}.Offset())
}

func TestPage_TotalPages(t *testing.T) {
	p := Page{Page: 1, PerPage: 10}

	require.Equal(t, 0, p.TotalPages(0))
	require.Equal(t, 1, p.TotalPages(1))
	require.Equal(t, 1, p.TotalPages(10))
	require.Equal(t, 2, p.TotalPages(11))
	require.Equal(t, 3, p.TotalPages(30))
}
