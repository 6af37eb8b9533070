package sanity

// GROQ projections for every content query the site issues. Reference
// fields are expanded here (the `->` joins) so the rendering layer only
// ever sees embedded data.

const pageQuery = `
  *[_type == "page" && slug.current == $slug][0] {
    _id,
    title,
    slug,
    pageBuilder[] {
      _key,
      _type,
      sectionTitle,
      sectionSubtitle,
      spacing,
      anchorId,
      ...,
      _type == "featuredProjectsBlock" => {
        ...,
        projects[]-> {
          _id,
          title,
          slug,
          excerpt,
          featuredImage,
          client,
          year,
          categories[]->{ _id, title }
        }
      }
    },
    seo
  }
`

const postQuery = `
  *[_type == "post" && slug.current == $slug][0] {
    _id,
    title,
    slug,
    excerpt,
    featuredImage,
    content,
    author,
    publishedAt,
    categories[]->{ _id, title, slug },
    tags[]->{ _id, title, slug },
    seo
  }
`

const postsQuery = `
  *[_type == "post"] | order(publishedAt desc) {
    _id,
    title,
    slug,
    excerpt,
    featuredImage,
    publishedAt,
    author,
    categories[]->{ _id, title, slug }
  }
`

const postsPaginatedQuery = `
  *[_type == "post"] | order(publishedAt desc) [$start...$end] {
    _id,
    title,
    slug,
    excerpt,
    featuredImage,
    publishedAt,
    author,
    categories[]->{ _id, title, slug }
  }
`

const postsCountQuery = `count(*[_type == "post"])`

const projectQuery = `
  *[_type == "project" && slug.current == $slug][0] {
    _id,
    title,
    slug,
    excerpt,
    featuredImage,
    gallery,
    content,
    client,
    year,
    services,
    url,
    categories[]->{ _id, title, slug },
    tags[]->{ _id, title, slug },
    seo
  }
`

const projectsPaginatedQuery = `
  *[_type == "project"] | order(year desc) [$start...$end] {
    _id,
    title,
    slug,
    excerpt,
    featuredImage,
    client,
    year,
    featured,
    categories[]->{ _id, title, slug }
  }
`

const projectsCountQuery = `count(*[_type == "project"])`

const layoutQuery = `
{
  "settings": *[_type == "siteSettings"][0] {
    siteName,
    siteDescription,
    logo,
    contactEmail,
    contactPhone,
    contactAddress,
    projectsPerPage,
    postsPerPage
  },
  "navigation": *[_type == "navigation"][0] {
    items[] {
      _key,
      label,
      link,
      children[] {
        _key,
        label,
        link
      }
    },
    ctaText,
    ctaLink
  },
  "footer": *[_type == "footer"][0] {
    tagline,
    menuLinks[] {
      _key,
      label,
      link
    },
    studioLinks[] {
      _key,
      label,
      link
    },
    copyright,
    designCredit
  }
}
`
