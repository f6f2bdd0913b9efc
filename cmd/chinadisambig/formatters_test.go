package main

import (
	"testing"

	"github.com/emojigit/chinadisambig/bot"
	"github.com/stretchr/testify/assert"
)

// TestPageState verifies states are looked up by title, not by position
func TestPageState(t *testing.T) {
	pages := []bot.PageReport{
		{Title: "1990年中国", State: "redirect", Target: "1990年中国大陆"},
		{Title: "1990年中國", State: "missing"},
	}

	assert.Equal(t, "missing", pageState(pages, "1990年中國"))
	assert.Equal(t, "redirect → 1990年中国大陆", pageState(pages, "1990年中国"))
	assert.Equal(t, "-", pageState(pages, "1991年中國"))
}
