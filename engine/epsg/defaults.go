package epsg

// defaultRegistry is loaded into every engine. A registry file passed
// with Config.Registry adds new codes or replaces these definitions.
const defaultRegistry = `
definitions:
- code: "EPSG:4326"
  name: WGS 84
  kind: geographic
  axes:
  - {name: Geodetic latitude, direction: north, unit: degree}
  - {name: Geodetic longitude, direction: east, unit: degree}
  area: [-180, -90, 180, 90]
  method: geographic

- code: "EPSG:4258"
  name: ETRS89
  kind: geographic
  axes:
  - {name: Geodetic latitude, direction: north, unit: degree}
  - {name: Geodetic longitude, direction: east, unit: degree}
  area: [-16.1, 32.88, 40.18, 84.73]
  proj: +proj=longlat +ellps=GRS80

- code: "EPSG:4269"
  name: NAD83
  kind: geographic
  axes:
  - {name: Geodetic latitude, direction: north, unit: degree}
  - {name: Geodetic longitude, direction: east, unit: degree}
  area: [167.65, 14.92, -40.73, 86.45]
  proj: +proj=longlat +ellps=GRS80

- code: "EPSG:3857"
  name: WGS 84 / Pseudo-Mercator
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [-180, -85.06, 180, 85.06]
  method: webmercator

- code: "EPSG:3785"
  name: Popular Visualisation CRS / Mercator
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [-180, -85.06, 180, 85.06]
  method: webmercator
  deprecated: true

- code: "EPSG:3395"
  name: WGS 84 / World Mercator
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [-180, -80, 180, 84]
  proj: +proj=merc +lon_0=0 +k=1 +x_0=0 +y_0=0 +ellps=WGS84

- code: "EPSG:3832"
  name: WGS 84 / PDC Mercator
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [98.69, -60, -68.05, 66.67]
  proj: +proj=merc +lon_0=150 +k=1 +x_0=0 +y_0=0 +ellps=WGS84

- code: "EPSG:32632"
  name: WGS 84 / UTM zone 32N
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [6, 0, 12, 84]
  proj: +proj=utm +zone=32 +ellps=WGS84

- code: "EPSG:32633"
  name: WGS 84 / UTM zone 33N
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [12, 0, 18, 84]
  proj: +proj=utm +zone=33 +ellps=WGS84

- code: "EPSG:32733"
  name: WGS 84 / UTM zone 33S
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [12, -80, 18, 0]
  proj: +proj=utm +zone=33 +south +ellps=WGS84

- code: "EPSG:25832"
  name: ETRS89 / UTM zone 32N
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [6, 38.76, 12, 84.33]
  proj: +proj=utm +zone=32 +ellps=GRS80

- code: "EPSG:31467"
  name: DHDN / 3-degree Gauss-Kruger zone 3
  kind: projected
  axes:
  - {name: Northing, direction: north, unit: metre}
  - {name: Easting, direction: east, unit: metre}
  area: [7.5, 47.27, 10.51, 55.09]
  proj: +proj=tmerc +lat_0=0 +lon_0=9 +k=1 +x_0=3500000 +y_0=0 +ellps=bessel

- code: "EPSG:2056"
  name: CH1903+ / LV95
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [5.96, 45.82, 10.49, 47.81]
  proj: +proj=somerc +lat_0=46.9524055555556 +lon_0=7.43958333333333 +k_0=1 +x_0=2600000 +y_0=1200000 +ellps=bessel

- code: "EPSG:27700"
  name: OSGB36 / British National Grid
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [-9.01, 49.75, 2.01, 61.01]
  proj: +proj=tmerc +lat_0=49 +lon_0=-2 +k=0.9996012717 +x_0=400000 +y_0=-100000 +ellps=airy

- code: "EPSG:2154"
  name: RGF93 v1 / Lambert-93
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: metre}
  - {name: Northing, direction: north, unit: metre}
  area: [-9.86, 41.15, 10.38, 51.56]
  proj: +proj=lcc +lat_0=46.5 +lon_0=3 +lat_1=49 +lat_2=44 +x_0=700000 +y_0=6600000 +ellps=GRS80

- code: "EPSG:3035"
  name: ETRS89-extended / LAEA Europe
  kind: projected
  axes:
  - {name: Northing, direction: north, unit: metre}
  - {name: Easting, direction: east, unit: metre}
  area: [-35.58, 24.6, 44.83, 84.73]
  proj: +proj=laea +lat_0=52 +lon_0=10 +x_0=4321000 +y_0=3210000 +ellps=GRS80

- code: "EPSG:2193"
  name: NZGD2000 / New Zealand Transverse Mercator 2000
  kind: projected
  axes:
  - {name: Northing, direction: north, unit: metre}
  - {name: Easting, direction: east, unit: metre}
  area: [166.37, -47.33, 178.63, -34.1]
  proj: +proj=tmerc +lat_0=0 +lon_0=173 +k=0.9996 +x_0=1600000 +y_0=10000000 +ellps=GRS80

- code: "EPSG:2263"
  name: NAD83 / New York Long Island (ftUS)
  kind: projected
  axes:
  - {name: Easting, direction: east, unit: US survey foot}
  - {name: Northing, direction: north, unit: US survey foot}
  area: [-74.26, 40.47, -71.8, 41.3]
  proj: +proj=lcc +lat_0=40.1666666666667 +lon_0=-74 +lat_1=41.0333333333333 +lat_2=40.6666666666667 +x_0=300000 +y_0=0 +ellps=GRS80

- code: "EPSG:3031"
  name: WGS 84 / Antarctic Polar Stereographic
  kind: projected
  axes:
  - {name: Easting, direction: "north along 90°E", unit: metre}
  - {name: Northing, direction: "north along 0°E", unit: metre}
  area: [-180, -90, 180, -60]
  proj: +proj=stere +lat_0=-90 +lat_ts=-71 +lon_0=0 +x_0=0 +y_0=0 +ellps=WGS84
`
