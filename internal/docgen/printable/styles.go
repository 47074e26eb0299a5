package printable

// ScreenCSS lays the document out for on-screen review.
const ScreenCSS = `
body {
  margin: 0;
  padding: 24px;
  background: #e8ecef;
  font-family: Georgia, 'Times New Roman', serif;
  font-size: 14px;
  color: #1a1a1a;
}
.document-page {
  background: #ffffff;
  max-width: 760px;
  margin: 0 auto 24px auto;
  padding: 48px 56px;
  box-shadow: 0 1px 4px rgba(0, 0, 0, 0.15);
}
.sb-header {
  text-align: center;
  border-bottom: 2px solid #2c5f7c;
  padding-bottom: 12px;
  margin-bottom: 16px;
}
.sb-clinic-name {
  font-size: 20px;
  font-weight: bold;
  color: #2c5f7c;
}
.sb-clinic-meta {
  font-size: 12px;
  color: #555555;
}
.sb-patient {
  margin-bottom: 16px;
  font-size: 13px;
}
.sb-label {
  font-weight: bold;
}
.sb-visit {
  border: 1px solid #c8d4db;
  border-radius: 4px;
  padding: 12px 16px;
  margin-bottom: 12px;
}
.sb-visit-date {
  font-weight: bold;
  color: #2c5f7c;
  margin-bottom: 6px;
}
.sb-codes {
  font-size: 13px;
  margin-bottom: 6px;
}
.sb-services {
  width: 100%;
  border-collapse: collapse;
  font-size: 13px;
  margin: 8px 0;
}
.sb-services th,
.sb-services td {
  border: 1px solid #c8d4db;
  padding: 4px 8px;
  text-align: left;
}
.sb-services th {
  background: #f4f7f9;
}
.sb-fee {
  text-align: right;
  white-space: nowrap;
}
.sb-visit-total {
  text-align: right;
  font-weight: bold;
  font-size: 13px;
}
.sb-notes {
  font-size: 12px;
  color: #555555;
  margin-top: 6px;
}
.sb-grand-total {
  text-align: right;
  font-size: 16px;
  font-weight: bold;
  border-top: 2px solid #2c5f7c;
  padding-top: 8px;
}
`

// PrintCSS overrides the screen layout for paper: no chrome, forced page
// breaks, and background colors preserved.
const PrintCSS = `
@media print {
  body {
    background: #ffffff;
    padding: 0;
    -webkit-print-color-adjust: exact;
    print-color-adjust: exact;
  }
  .document-page {
    box-shadow: none;
    max-width: none;
    margin: 0;
    padding: 0;
  }
  .page-break {
    page-break-before: always;
    break-before: page;
  }
  .sb-visit {
    page-break-inside: avoid;
    break-inside: avoid;
  }
}
`
