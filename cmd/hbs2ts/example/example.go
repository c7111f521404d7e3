// Package example is worked documentation for hbs2ts: a template drawn
// from the same treatment-chart domain the teacher's rex handler rendered,
// reworked as a Handlebars-family component template with no web framework
// underneath it.
package example

// TreatmentChart is the template transformed by Transform in example_test.go.
//
// It mirrors the shape the original rex handler passed into
// c.Render("views/inpatient/treatment-chart.html", rex.Map{...}): a visit
// header, a named block for page title, and a block iteration over
// prescriptions. Both named blocks are siblings so the component's children
// are all named blocks with no other content, per the named-block
// exclusivity rule.
const TreatmentChart = `<TreatmentChart visit={{visit}} title={{title}}>
  <:header>
    {{title}} ({{label}})
  </:header>
  <:body>
    {{#each prescriptions as |p|}}
      <Prescription drug={{p.Drug.Name}} qty={{p.Quantity}} dosage={{p.Dosage}} />
    {{else}}
      <EmptyState message="No prescriptions on this chart" />
    {{/each}}
  </:body>
</TreatmentChart>
`

// IdentifiersInScope lists the names TreatmentChart expects to already be
// bound in the surrounding scope, the names the original handler built up
// before calling c.Render.
var IdentifiersInScope = []string{"visit", "title", "label", "prescriptions"}
