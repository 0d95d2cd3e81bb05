package templates

import "github.com/ukaji3/chartnote-go/pkg/chartnote/models"

// Built-in scripts draw into `container`, the element the host hands to the
// script. Main marks use the "steelblue" literal so code generation can
// swap in a custom colour.

const barCode = `const data = [
  {label: "A", value: 30},
  {label: "B", value: 80},
  {label: "C", value: 45},
  {label: "D", value: 60},
  {label: "E", value: 20}
];
const width = 600;
const height = 400;
const margin = {top: 20, right: 20, bottom: 30, left: 40};

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

const x = d3.scaleBand()
  .domain(data.map(d => d.label))
  .range([margin.left, width - margin.right])
  .padding(0.1);

const y = d3.scaleLinear()
  .domain([0, d3.max(data, d => d.value)]).nice()
  .range([height - margin.bottom, margin.top]);

svg.append("g")
    .attr("fill", "steelblue")
  .selectAll("rect")
  .data(data)
  .join("rect")
    .attr("x", d => x(d.label))
    .attr("y", d => y(d.value))
    .attr("height", d => y(0) - y(d.value))
    .attr("width", x.bandwidth());

svg.append("g")
  .attr("transform", ` + "`translate(0,${height - margin.bottom})`" + `)
  .call(d3.axisBottom(x));

svg.append("g")
  .attr("transform", ` + "`translate(${margin.left},0)`" + `)
  .call(d3.axisLeft(y));
`

const horizontalBarCode = `const data = [
  {label: "Rust", value: 87},
  {label: "Go", value: 72},
  {label: "Python", value: 65},
  {label: "Java", value: 41}
];
const width = 600;
const height = 300;
const margin = {top: 20, right: 30, bottom: 30, left: 80};

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

const x = d3.scaleLinear()
  .domain([0, d3.max(data, d => d.value)]).nice()
  .range([margin.left, width - margin.right]);

const y = d3.scaleBand()
  .domain(data.map(d => d.label))
  .range([margin.top, height - margin.bottom])
  .padding(0.15);

svg.append("g")
    .attr("fill", "steelblue")
  .selectAll("rect")
  .data(data)
  .join("rect")
    .attr("x", x(0))
    .attr("y", d => y(d.label))
    .attr("width", d => x(d.value) - x(0))
    .attr("height", y.bandwidth());

svg.append("g")
  .attr("transform", ` + "`translate(0,${height - margin.bottom})`" + `)
  .call(d3.axisBottom(x));

svg.append("g")
  .attr("transform", ` + "`translate(${margin.left},0)`" + `)
  .call(d3.axisLeft(y));
`

const stackedBarCode = `const data = [
  {label: "2021", apples: 10, pears: 20, plums: 5},
  {label: "2022", apples: 15, pears: 12, plums: 9},
  {label: "2023", apples: 22, pears: 18, plums: 7}
];
const keys = ["apples", "pears", "plums"];
const width = 600;
const height = 400;
const margin = {top: 20, right: 20, bottom: 30, left: 40};

const series = d3.stack().keys(keys)(data);

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

const x = d3.scaleBand()
  .domain(data.map(d => d.label))
  .range([margin.left, width - margin.right])
  .padding(0.1);

const y = d3.scaleLinear()
  .domain([0, d3.max(series, s => d3.max(s, d => d[1]))]).nice()
  .range([height - margin.bottom, margin.top]);

const palette = d3.scaleOrdinal(keys, d3.schemeTableau10);

svg.append("g")
  .selectAll("g")
  .data(series)
  .join("g")
    .attr("fill", d => palette(d.key))
  .selectAll("rect")
  .data(d => d)
  .join("rect")
    .attr("x", d => x(d.data.label))
    .attr("y", d => y(d[1]))
    .attr("height", d => y(d[0]) - y(d[1]))
    .attr("width", x.bandwidth());

svg.append("g")
  .attr("transform", ` + "`translate(0,${height - margin.bottom})`" + `)
  .call(d3.axisBottom(x));

svg.append("g")
  .attr("transform", ` + "`translate(${margin.left},0)`" + `)
  .call(d3.axisLeft(y));
`

const lineCode = `const data = [
  {label: "Jan", value: 12},
  {label: "Feb", value: 19},
  {label: "Mar", value: 15},
  {label: "Apr", value: 25},
  {label: "May", value: 22}
];
const width = 600;
const height = 400;
const margin = {top: 20, right: 20, bottom: 30, left: 40};

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

const x = d3.scalePoint()
  .domain(data.map(d => d.label))
  .range([margin.left, width - margin.right]);

const y = d3.scaleLinear()
  .domain([0, d3.max(data, d => d.value)]).nice()
  .range([height - margin.bottom, margin.top]);

const line = d3.line()
  .x(d => x(d.label))
  .y(d => y(d.value));

svg.append("path")
  .datum(data)
  .attr("fill", "none")
  .attr("stroke", "steelblue")
  .attr("stroke-width", 2)
  .attr("d", line);

svg.append("g")
  .attr("transform", ` + "`translate(0,${height - margin.bottom})`" + `)
  .call(d3.axisBottom(x));

svg.append("g")
  .attr("transform", ` + "`translate(${margin.left},0)`" + `)
  .call(d3.axisLeft(y));
`

const areaCode = `const data = [
  {label: "Mon", value: 4},
  {label: "Tue", value: 9},
  {label: "Wed", value: 7},
  {label: "Thu", value: 12},
  {label: "Fri", value: 10}
];
const width = 600;
const height = 400;
const margin = {top: 20, right: 20, bottom: 30, left: 40};

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

const x = d3.scalePoint()
  .domain(data.map(d => d.label))
  .range([margin.left, width - margin.right]);

const y = d3.scaleLinear()
  .domain([0, d3.max(data, d => d.value)]).nice()
  .range([height - margin.bottom, margin.top]);

const area = d3.area()
  .x(d => x(d.label))
  .y0(y(0))
  .y1(d => y(d.value));

svg.append("path")
  .datum(data)
  .attr("fill", "steelblue")
  .attr("fill-opacity", 0.6)
  .attr("d", area);

svg.append("g")
  .attr("transform", ` + "`translate(0,${height - margin.bottom})`" + `)
  .call(d3.axisBottom(x));

svg.append("g")
  .attr("transform", ` + "`translate(${margin.left},0)`" + `)
  .call(d3.axisLeft(y));
`

const pieCode = `const data = [
  {label: "Chrome", value: 64},
  {label: "Safari", value: 19},
  {label: "Firefox", value: 4},
  {label: "Edge", value: 4},
  {label: "Other", value: 9}
];
const width = 400;
const height = 400;
const radius = Math.min(width, height) / 2;
const color = "steelblue";

const shade = d3.scaleLinear()
  .domain([0, data.length])
  .range([color, "#f0f0f0"]);

const svg = d3.select(container).append("svg")
  .attr("viewBox", [-width / 2, -height / 2, width, height]);

const pie = d3.pie().sort(null).value(d => d.value);
const arc = d3.arc().innerRadius(0).outerRadius(radius - 10);

svg.selectAll("path")
  .data(pie(data))
  .join("path")
    .attr("fill", (d, i) => shade(i))
    .attr("stroke", "white")
    .attr("d", arc);

svg.selectAll("text")
  .data(pie(data))
  .join("text")
    .attr("transform", d => ` + "`translate(${arc.centroid(d)})`" + `)
    .attr("text-anchor", "middle")
    .text(d => d.data.label);
`

const donutCode = `const data = [
  {label: "Done", value: 42},
  {label: "In progress", value: 23},
  {label: "Blocked", value: 7},
  {label: "Todo", value: 28}
];
const width = 400;
const height = 400;
const radius = Math.min(width, height) / 2;
const color = "steelblue";

const shade = d3.scaleLinear()
  .domain([0, data.length])
  .range([color, "#f0f0f0"]);

const svg = d3.select(container).append("svg")
  .attr("viewBox", [-width / 2, -height / 2, width, height]);

const pie = d3.pie().sort(null).value(d => d.value);
const arc = d3.arc().innerRadius(radius * 0.55).outerRadius(radius - 10);

svg.selectAll("path")
  .data(pie(data))
  .join("path")
    .attr("fill", (d, i) => shade(i))
    .attr("stroke", "white")
    .attr("d", arc);

svg.append("text")
  .attr("text-anchor", "middle")
  .text(d3.sum(data, d => d.value));
`

const scatterCode = `const data = [
  {x: 5, y: 20},
  {x: 14, y: 38},
  {x: 25, y: 31},
  {x: 33, y: 52},
  {x: 47, y: 60}
];
const width = 600;
const height = 400;
const margin = {top: 20, right: 20, bottom: 30, left: 40};

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

const x = d3.scaleLinear()
  .domain(d3.extent(data, d => d.x)).nice()
  .range([margin.left, width - margin.right]);

const y = d3.scaleLinear()
  .domain(d3.extent(data, d => d.y)).nice()
  .range([height - margin.bottom, margin.top]);

svg.append("g")
    .attr("fill", "steelblue")
  .selectAll("circle")
  .data(data)
  .join("circle")
    .attr("cx", d => x(d.x))
    .attr("cy", d => y(d.y))
    .attr("r", 4);

svg.append("g")
  .attr("transform", ` + "`translate(0,${height - margin.bottom})`" + `)
  .call(d3.axisBottom(x));

svg.append("g")
  .attr("transform", ` + "`translate(${margin.left},0)`" + `)
  .call(d3.axisLeft(y));
`

const bubbleCode = `const data = [
  {label: "Go", value: 120},
  {label: "Rust", value: 80},
  {label: "Zig", value: 25},
  {label: "C", value: 60},
  {label: "Nim", value: 12}
];
const width = 500;
const height = 500;

const root = d3.pack()
  .size([width, height])
  .padding(4)(d3.hierarchy({children: data}).sum(d => d.value));

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

const node = svg.selectAll("g")
  .data(root.leaves())
  .join("g")
    .attr("transform", d => ` + "`translate(${d.x},${d.y})`" + `);

node.append("circle")
  .attr("r", d => d.r)
  .attr("fill", "steelblue")
  .attr("fill-opacity", 0.7);

node.append("text")
  .attr("text-anchor", "middle")
  .text(d => d.data.label);
`

const histogramCode = `const data = [
  {value: 2}, {value: 3}, {value: 3}, {value: 4}, {value: 5},
  {value: 5}, {value: 5}, {value: 6}, {value: 7}, {value: 9}
];
const width = 600;
const height = 400;
const margin = {top: 20, right: 20, bottom: 30, left: 40};

const x = d3.scaleLinear()
  .domain(d3.extent(data, d => d.value)).nice()
  .range([margin.left, width - margin.right]);

const bins = d3.bin()
  .value(d => d.value)
  .domain(x.domain())
  .thresholds(x.ticks(10))(data);

const y = d3.scaleLinear()
  .domain([0, d3.max(bins, b => b.length)]).nice()
  .range([height - margin.bottom, margin.top]);

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

svg.append("g")
    .attr("fill", "steelblue")
  .selectAll("rect")
  .data(bins)
  .join("rect")
    .attr("x", b => x(b.x0) + 1)
    .attr("y", b => y(b.length))
    .attr("width", b => Math.max(0, x(b.x1) - x(b.x0) - 1))
    .attr("height", b => y(0) - y(b.length));

svg.append("g")
  .attr("transform", ` + "`translate(0,${height - margin.bottom})`" + `)
  .call(d3.axisBottom(x));
`

const heatmapCode = `const data = [
  {row: "Mon", col: "9am", value: 3},
  {row: "Mon", col: "12pm", value: 8},
  {row: "Tue", col: "9am", value: 5},
  {row: "Tue", col: "12pm", value: 1}
];
const width = 500;
const height = 300;
const margin = {top: 20, right: 20, bottom: 30, left: 50};

const x = d3.scaleBand()
  .domain([...new Set(data.map(d => d.col))])
  .range([margin.left, width - margin.right])
  .padding(0.05);

const y = d3.scaleBand()
  .domain([...new Set(data.map(d => d.row))])
  .range([margin.top, height - margin.bottom])
  .padding(0.05);

const shade = d3.scaleSequential(d3.interpolateBlues)
  .domain([0, d3.max(data, d => d.value)]);

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

svg.selectAll("rect")
  .data(data)
  .join("rect")
    .attr("x", d => x(d.col))
    .attr("y", d => y(d.row))
    .attr("width", x.bandwidth())
    .attr("height", y.bandwidth())
    .attr("fill", d => shade(d.value));

svg.append("g")
  .attr("transform", ` + "`translate(0,${height - margin.bottom})`" + `)
  .call(d3.axisBottom(x));

svg.append("g")
  .attr("transform", ` + "`translate(${margin.left},0)`" + `)
  .call(d3.axisLeft(y));
`

const radarCode = `const data = [
  {axis: "Speed", value: 0.8},
  {axis: "Power", value: 0.6},
  {axis: "Range", value: 0.9},
  {axis: "Cost", value: 0.4},
  {axis: "Comfort", value: 0.7}
];
const width = 400;
const height = 400;
const radius = Math.min(width, height) / 2 - 30;
const angle = 2 * Math.PI / data.length;

const r = d3.scaleLinear().domain([0, 1]).range([0, radius]);

const svg = d3.select(container).append("svg")
  .attr("viewBox", [-width / 2, -height / 2, width, height]);

const radial = d3.lineRadial()
  .angle((d, i) => i * angle)
  .radius(d => r(d.value))
  .curve(d3.curveLinearClosed);

svg.append("path")
  .datum(data)
  .attr("fill", "steelblue")
  .attr("fill-opacity", 0.4)
  .attr("stroke", "steelblue")
  .attr("d", radial);

svg.selectAll("text")
  .data(data)
  .join("text")
    .attr("x", (d, i) => (radius + 12) * Math.sin(i * angle))
    .attr("y", (d, i) => -(radius + 12) * Math.cos(i * angle))
    .attr("text-anchor", "middle")
    .text(d => d.axis);
`

const forceCode = `const nodes = [
  {id: "alpha"}, {id: "beta"}, {id: "gamma"}, {id: "delta"}
];
const links = [
  {source: "alpha", target: "beta"},
  {source: "alpha", target: "gamma"},
  {source: "gamma", target: "delta"}
];
const width = 600;
const height = 400;

const svg = d3.select(container).append("svg")
  .attr("viewBox", [-width / 2, -height / 2, width, height]);

const link = svg.append("g")
    .attr("stroke", "#999")
  .selectAll("line")
  .data(links)
  .join("line");

const node = svg.append("g")
    .attr("fill", "steelblue")
  .selectAll("circle")
  .data(nodes)
  .join("circle")
    .attr("r", 8);

d3.forceSimulation(nodes)
  .force("link", d3.forceLink(links).id(d => d.id).distance(80))
  .force("charge", d3.forceManyBody().strength(-200))
  .force("center", d3.forceCenter())
  .on("tick", () => {
    link
      .attr("x1", d => d.source.x).attr("y1", d => d.source.y)
      .attr("x2", d => d.target.x).attr("y2", d => d.target.y);
    node.attr("cx", d => d.x).attr("cy", d => d.y);
  });
`

const chordCode = `const matrix = [
  [0, 5, 6, 4],
  [5, 0, 3, 2],
  [6, 3, 0, 7],
  [4, 2, 7, 0]
];
const names = ["North", "East", "South", "West"];
const width = 500;
const height = 500;
const outer = Math.min(width, height) / 2 - 20;
const inner = outer - 12;

const chords = d3.chord().padAngle(0.05)(matrix);
const palette = d3.scaleOrdinal(names, d3.schemeTableau10);

const svg = d3.select(container).append("svg")
  .attr("viewBox", [-width / 2, -height / 2, width, height]);

svg.append("g")
  .selectAll("path")
  .data(chords.groups)
  .join("path")
    .attr("fill", d => palette(names[d.index]))
    .attr("d", d3.arc().innerRadius(inner).outerRadius(outer));

svg.append("g")
    .attr("fill-opacity", 0.7)
  .selectAll("path")
  .data(chords)
  .join("path")
    .attr("fill", d => palette(names[d.source.index]))
    .attr("d", d3.ribbon().radius(inner));
`

const treemapCode = `const tree = {
  name: "root",
  children: [
    {name: "docs", value: 30},
    {name: "src", children: [{name: "core", value: 50}, {name: "cli", value: 20}]},
    {name: "tests", value: 25}
  ]
};
const width = 600;
const height = 400;

const root = d3.treemap()
  .size([width, height])
  .padding(2)(d3.hierarchy(tree).sum(d => d.value));

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

const leaf = svg.selectAll("g")
  .data(root.leaves())
  .join("g")
    .attr("transform", d => ` + "`translate(${d.x0},${d.y0})`" + `);

leaf.append("rect")
  .attr("fill", "steelblue")
  .attr("fill-opacity", 0.8)
  .attr("width", d => d.x1 - d.x0)
  .attr("height", d => d.y1 - d.y0);

leaf.append("text")
  .attr("x", 4)
  .attr("y", 14)
  .text(d => d.data.name);
`

const timelineCode = `const events = [
  {label: "Kickoff", date: "2024-01-10"},
  {label: "Beta", date: "2024-03-02"},
  {label: "Launch", date: "2024-05-20"}
];
const width = 600;
const height = 160;
const margin = {top: 20, right: 30, bottom: 30, left: 30};

const parse = d3.utcParse("%Y-%m-%d");
const x = d3.scaleTime()
  .domain(d3.extent(events, d => parse(d.date)))
  .range([margin.left, width - margin.right]);

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

svg.append("g")
  .attr("transform", ` + "`translate(0,${height / 2})`" + `)
  .call(d3.axisBottom(x));

svg.selectAll("circle")
  .data(events)
  .join("circle")
    .attr("cx", d => x(parse(d.date)))
    .attr("cy", height / 2)
    .attr("r", 6)
    .attr("fill", "steelblue");

svg.selectAll("text")
  .data(events)
  .join("text")
    .attr("x", d => x(parse(d.date)))
    .attr("y", height / 2 - 12)
    .attr("text-anchor", "middle")
    .text(d => d.label);
`

const ganttCode = `const tasks = [
  {label: "Design", start: "2024-01-01", end: "2024-01-20"},
  {label: "Build", start: "2024-01-15", end: "2024-03-01"},
  {label: "Test", start: "2024-02-20", end: "2024-03-15"}
];
const width = 600;
const height = 240;
const margin = {top: 20, right: 20, bottom: 30, left: 70};

const parse = d3.utcParse("%Y-%m-%d");
const x = d3.scaleTime()
  .domain([d3.min(tasks, d => parse(d.start)), d3.max(tasks, d => parse(d.end))])
  .range([margin.left, width - margin.right]);

const y = d3.scaleBand()
  .domain(tasks.map(d => d.label))
  .range([margin.top, height - margin.bottom])
  .padding(0.3);

const svg = d3.select(container).append("svg")
  .attr("viewBox", [0, 0, width, height]);

svg.selectAll("rect")
  .data(tasks)
  .join("rect")
    .attr("x", d => x(parse(d.start)))
    .attr("y", d => y(d.label))
    .attr("width", d => x(parse(d.end)) - x(parse(d.start)))
    .attr("height", y.bandwidth())
    .attr("fill", "steelblue");

svg.append("g")
  .attr("transform", ` + "`translate(0,${height - margin.bottom})`" + `)
  .call(d3.axisBottom(x));

svg.append("g")
  .attr("transform", ` + "`translate(${margin.left},0)`" + `)
  .call(d3.axisLeft(y));
`

func builtins() []models.Template {
	return []models.Template{
		{Key: "bar", Name: "Bar chart", Kind: models.Bar, Description: "Vertical bars over a band scale", Tags: []string{"column", "categorical"}, Code: barCode},
		{Key: "horizontal-bar", Name: "Horizontal bar chart", Kind: models.HorizontalBar, Description: "Ranked horizontal bars", Tags: []string{"ranking", "categorical"}, Code: horizontalBarCode},
		{Key: "stacked-bar", Name: "Stacked bar chart", Kind: models.StackedBar, Description: "Bars split into stacked series", Tags: []string{"stack", "composition"}, Code: stackedBarCode},
		{Key: "line", Name: "Line chart", Kind: models.Line, Description: "Values connected along an ordered axis", Tags: []string{"trend", "series"}, Code: lineCode},
		{Key: "area", Name: "Area chart", Kind: models.Area, Description: "Filled line showing volume over an axis", Tags: []string{"trend", "volume"}, Code: areaCode},
		{Key: "pie", Name: "Pie chart", Kind: models.Pie, Description: "Shares of a whole as slices", Tags: []string{"share", "composition"}, Code: pieCode},
		{Key: "donut", Name: "Donut chart", Kind: models.Donut, Description: "Pie with a hollow centre and total", Tags: []string{"share", "ring"}, Code: donutCode},
		{Key: "scatter", Name: "Scatter plot", Kind: models.Scatter, Description: "Points positioned by two numeric fields", Tags: []string{"correlation", "xy"}, Code: scatterCode},
		{Key: "bubble", Name: "Bubble pack", Kind: models.Bubble, Description: "Circles sized by value, packed together", Tags: []string{"pack", "size"}, Code: bubbleCode},
		{Key: "histogram", Name: "Histogram", Kind: models.Histogram, Description: "Distribution of values in bins", Tags: []string{"distribution", "bins"}, Code: histogramCode},
		{Key: "heatmap", Name: "Heatmap", Kind: models.Heatmap, Description: "Grid of cells shaded by value", Tags: []string{"matrix", "grid"}, Code: heatmapCode},
		{Key: "radar", Name: "Radar chart", Kind: models.Radar, Description: "Values on radial axes", Tags: []string{"spider", "profile"}, Code: radarCode},
		{Key: "force", Name: "Force-directed graph", Kind: models.Force, Description: "Nodes and links laid out by simulation", Tags: []string{"network", "graph"}, Code: forceCode},
		{Key: "chord", Name: "Chord diagram", Kind: models.Chord, Description: "Flows between groups from a matrix", Tags: []string{"flow", "matrix"}, Code: chordCode},
		{Key: "treemap", Name: "Treemap", Kind: models.Treemap, Description: "Nested rectangles sized by value", Tags: []string{"hierarchy", "size"}, Code: treemapCode},
		{Key: "timeline", Name: "Timeline", Kind: models.Timeline, Description: "Dated events along a time axis", Tags: []string{"time", "events"}, Code: timelineCode},
		{Key: "gantt", Name: "Gantt chart", Kind: models.Gantt, Description: "Tasks as bars between start and end dates", Tags: []string{"schedule", "project"}, Code: ganttCode},
	}
}
