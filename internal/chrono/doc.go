// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chrono provides the value types shared by the picker widgets:
a 12-hour clock time and a calendar date, together with their fixed
display formats, strict parsing, validation, and the month-grid math
used by the date picker's calendar view.

# Value Types

Time (time.go) - Hour (1-12), minute (0-59), and an AM/PM period.
Date (date.go) - Day, month, year; validated against real month lengths
including leap years.

# String Formats

Times render as "HH:MM AM" or "HH:MM PM"; dates render as "DD.MM.YYYY".
Both formats are fixed-width and zero-padded. ParseTime and ParseDate
accept exactly these shapes and nothing else: a missing leading zero, a
three-digit year, or an impossible date such as 30.02.2021 yields
ok=false rather than a best-effort value. Round-tripping any valid value
through Format and Parse returns the original.

# Month Grids

MonthGrid (grid.go) - A 6x7, Sunday-first calendar layout for one month.
The 42 cells hold day numbers, with zero cells padding before the 1st
and after the last day so the 1st lands in its weekday column.
*/
package chrono
