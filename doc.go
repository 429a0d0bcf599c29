// Package chart draws the social media charts: a box plot of likes per
// age group, a grouped bar chart of average likes per platform and post
// type, and a line chart of average likes over time.
//
// # Data Representation: Data Frames
//
// Input is CSV. A DataFrame keeps every cell as text; columns are
// coerced when requested:
//
//	df.Floats("Likes")          numbers, for values and bar heights
//	df.Times("Date")            dates and timestamps
//	df.Levels("AgeGroup")       sorted distinct categories
//
// Statistics (StatMean, StatBoxplot) turn a data frame into the values
// a chart shows. The five-number summaries come from package stat.
//
// # Drawing
//
// A chart maps its data through scales (LinearScale, TimeScale,
// BandScale) to canvas coordinates, lets geoms (GeomBox, GeomBar,
// GeomLine, GeomPoint) produce graphical objects (Grobs) and draws the
// grobs on a Viewport. Render sets up an SVG or PNG canvas:
//
//	c, err := chart.NewBoxplotChart(ctx, df, "AgeGroup", "Likes")
//	...
//	err = chart.Render(w, c, "svg", chart.DefaultTheme)
package chart
